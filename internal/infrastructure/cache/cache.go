// Package cache provides the optional key/value cache used for dashboard
// aggregates. A nil Cache is valid everywhere it is consumed: callers fall
// back to computing fresh, they never fail the request.
package cache

import "time"

// Cache is a TTL key/value store.
type Cache interface {
	// Get returns the cached value and whether it was present and unexpired.
	Get(key string) ([]byte, bool)
	// Set stores the value with the given TTL. A non-positive TTL stores
	// the value without expiry.
	Set(key string, value []byte, ttl time.Duration)
	// DeletePattern removes every key matching the pattern. Only a trailing
	// "*" wildcard is supported (e.g. "dashboard:*").
	DeletePattern(pattern string)
}
