package session

import (
	"time"

	"github.com/coocood/freecache"
)

// Store is session-scoped key/value storage. Entries live for at most the
// session TTL and are gone once the session ends.
//
// Get returns the stored value and whether it was present. Set overwrites any
// existing value under the key.
type Store interface {
	Get(sid string, key string) (string, bool)
	Set(sid string, key string, value string) error
}

// CacheStore keeps session state in an in-process freecache instance. Expiry
// of the underlying entries stands in for session teardown.
type CacheStore struct {
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCacheStore(sizeBytes int, ttl time.Duration) *CacheStore {
	return &CacheStore{
		cache:      freecache.NewCache(sizeBytes),
		ttlSeconds: int(ttl / time.Second),
	}
}

func (s *CacheStore) Get(sid string, key string) (string, bool) {
	value, err := s.cache.Get(entryKey(sid, key))
	if err != nil {
		// freecache returns ErrNotFound for both missing and expired entries.
		return "", false
	}
	return string(value), true
}

func (s *CacheStore) Set(sid string, key string, value string) error {
	return s.cache.Set(entryKey(sid, key), []byte(value), s.ttlSeconds)
}

func entryKey(sid string, key string) []byte {
	return []byte(sid + "/" + key)
}
