// Package ratelimit implements a fixed-window request counter keyed by an
// arbitrary identifier (e.g. "login:<ip>"). The counter backend is an
// injected Store so tests use the in-memory map and a multi-instance
// deployment can plug in a shared store.
package ratelimit

import (
	"sync"
	"time"
)

// Store counts hits per key within a fixed window. Increment returns the
// count for the current window (including this hit) and the time the window
// resets.
type Store interface {
	Increment(key string, window time.Duration) (count int, reset time.Time)
}

// Result describes the outcome of a rate-limit check.
type Result struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}

// Limiter applies a fixed-window limit on top of a Store.
type Limiter struct {
	store  Store
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter allowing limit hits per window.
func NewLimiter(store Store, limit int, window time.Duration) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		window: window,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) Result {
	count, reset := l.store.Increment(key, l.window)
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= l.limit,
		Remaining: remaining,
		Reset:     reset,
	}
}

type windowEntry struct {
	count int
	reset time.Time
}

// MemoryStore is a process-local Store backed by a map. Expired windows are
// pruned by a background sweep.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

// NewMemoryStore creates an in-memory store and starts its expiry sweep.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*windowEntry),
	}
	if sweepInterval > 0 {
		go s.sweepLoop(sweepInterval)
	}
	return s
}

// Increment implements Store.
func (s *MemoryStore) Increment(key string, window time.Duration) (int, time.Time) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || now.After(entry.reset) {
		entry = &windowEntry{reset: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.reset
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.sweep()
	}
}

func (s *MemoryStore) sweep() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, entry := range s.entries {
		if now.After(entry.reset) {
			delete(s.entries, key)
		}
	}
}
