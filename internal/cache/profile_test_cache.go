package cache

import "sync"

var _ Cache = (*ProfileTestCache)(nil)

// ProfileTestCache is an in-memory stand-in without expiry.
type ProfileTestCache struct {
	cache map[string][]byte
	mutex sync.Mutex
}

func NewProfileTestCache() *ProfileTestCache {
	return &ProfileTestCache{
		cache: make(map[string][]byte),
	}
}

func (ptc *ProfileTestCache) Get(key string) ([]byte, bool) {
	ptc.mutex.Lock()
	defer ptc.mutex.Unlock()

	val, ok := ptc.cache[key]
	return val, ok
}

func (ptc *ProfileTestCache) Set(key string, value []byte) {
	ptc.mutex.Lock()
	defer ptc.mutex.Unlock()

	ptc.cache[key] = value
}

func (ptc *ProfileTestCache) Del(key string) {
	ptc.mutex.Lock()
	defer ptc.mutex.Unlock()

	delete(ptc.cache, key)
}

func (ptc *ProfileTestCache) Clear() {
	ptc.mutex.Lock()
	defer ptc.mutex.Unlock()

	ptc.cache = make(map[string][]byte)
}
