package service

import (
	"encoding/json"
	"net/url"
)

// CacheStore defines the read-through cache in front of the hot storefront
// reads (categories, featured/sale products, promotions, settings).
//
// Contract: Get returns a value only while it is younger than the store's
// TTL; stale entries are evicted on lookup rather than by a background
// sweep. Set overwrites unconditionally. There is no invalidation on
// writes, so callers may observe data up to one TTL old after a mutation;
// this is an accepted staleness window. A cache failure of any kind is a
// miss, never an error surfaced to the caller.
type CacheStore interface {
	// Get returns the cached value for key and whether it was present and fresh.
	Get(key string) (json.RawMessage, bool)

	// Set stores value under key with the store's TTL.
	Set(key string, value json.RawMessage)

	// Key derives the cache key for a request path and its query parameters.
	// Keys for logically-equal queries with different parameter order are not
	// guaranteed to collide; this is a best-effort cache, not an index.
	Key(path string, query url.Values) string
}
