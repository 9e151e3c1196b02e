// Package cache provides the in-memory read-through cache used by the hot
// storefront read endpoints.
package cache

import (
	"encoding/json"
	"net/url"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
)

const (
	defaultTTL        = 60 * time.Second
	defaultMaxEntries = 100
)

type entry struct {
	data      json.RawMessage
	timestamp time.Time
}

// Store is a process-wide expiring key/value map with a size bound. Entries
// expire lazily on lookup; when the entry count passes the high-water mark,
// the oldest half (by insertion order) is dropped in one pass. This is a
// crude unbounded-growth guard, not an LRU.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]entry
	order      []string
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a cache store from configuration.
func New(cfg *config.Config) service.CacheStore {
	ttl := defaultTTL
	maxEntries := defaultMaxEntries
	if cfg.Cache != nil {
		if cfg.Cache.TTL > 0 {
			ttl = cfg.Cache.TTL
		}
		if cfg.Cache.MaxEntries > 0 {
			maxEntries = cfg.Cache.MaxEntries
		}
	}

	return NewWithClock(ttl, maxEntries, time.Now)
}

// NewWithClock creates a cache store with an explicit clock. Tests use this
// to step time across the TTL boundary deterministically.
func NewWithClock(ttl time.Duration, maxEntries int, now func() time.Time) *Store {
	return &Store{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
	}
}

// Get returns the cached value for key while it is younger than the TTL.
// A stale entry is evicted on this lookup and reported as a miss.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	ent, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if s.now().Sub(ent.timestamp) >= s.ttl {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have refreshed it.
		if cur, still := s.entries[key]; still && cur.timestamp.Equal(ent.timestamp) {
			delete(s.entries, key)
			// Drop the key's slot too, so a later Set re-appends it at its
			// true position instead of leaving a stale-position duplicate
			// for eviction to consult.
			s.removeOrderLocked(key)
		}
		s.mu.Unlock()

		return nil, false
	}

	return ent.data, true
}

// Set stores value under key, overwriting any prior entry and refreshing its
// timestamp. Overflow past the high-water mark evicts the oldest half.
func (s *Store) Set(key string, value json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; !exists {
		s.order = append(s.order, key)
	}
	s.entries[key] = entry{data: value, timestamp: s.now()}

	if len(s.entries) > s.maxEntries {
		s.evictOldestHalfLocked()
	}
}

// Key derives the cache key for a request path and its query parameters.
// Marshal failures degrade to the bare path; the cache is best-effort.
func (s *Store) Key(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}

	raw, err := json.Marshal(query)
	if err != nil {
		return path
	}

	return path + "?" + string(raw)
}

// removeOrderLocked drops key from the insertion-order list. Caller holds
// the write lock.
func (s *Store) removeOrderLocked(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)

			return
		}
	}
}

// evictOldestHalfLocked drops the oldest half of the live entries in one
// pass and compacts the insertion-order list. Caller holds the write lock.
func (s *Store) evictOldestHalfLocked() {
	toEvict := len(s.entries) / 2

	evicted := 0
	kept := s.order[:0]
	for _, key := range s.order {
		if _, ok := s.entries[key]; !ok {
			// Key already expired out of the map; just compact it away.
			continue
		}
		if evicted < toEvict {
			delete(s.entries, key)
			evicted++

			continue
		}
		kept = append(kept, key)
	}
	s.order = kept
}
