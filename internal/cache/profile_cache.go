package cache

import (
	"github.com/coocood/freecache"
)

var _ Cache = (*ProfileCache)(nil)

const (
	// 10 MB is plenty for profile snapshots, freecache allocates it upfront.
	profileCacheSize = 10 * 1024 * 1024

	defaultTTLSeconds = 60
)

// ProfileCache keeps marshalled profile responses so repeat reads skip
// the database. Award and class changes must Del the user's entry.
type ProfileCache struct {
	mainCache  *freecache.Cache
	ttlSeconds int
}

func NewProfileCache() *ProfileCache {
	return &ProfileCache{
		mainCache:  freecache.NewCache(profileCacheSize),
		ttlSeconds: defaultTTLSeconds,
	}
}

func (pc *ProfileCache) Get(key string) ([]byte, bool) {
	value, err := pc.mainCache.Get([]byte(key))
	if err != nil {
		// freecache returns ErrNotFound for both missing and expired
		return nil, false
	}
	return value, true
}

func (pc *ProfileCache) Set(key string, value []byte) {
	// an entry too large to cache is not an error worth propagating
	_ = pc.mainCache.Set([]byte(key), value, pc.ttlSeconds)
}

func (pc *ProfileCache) Del(key string) {
	pc.mainCache.Del([]byte(key))
}

func (pc *ProfileCache) Clear() {
	pc.mainCache.Clear()
}
