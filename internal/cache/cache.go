package cache

// Cache holds short-lived JSON snapshots keyed by string. Entries
// expire on their own, Del exists for explicit invalidation after
// writes.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Del(key string)
	Clear()
}
