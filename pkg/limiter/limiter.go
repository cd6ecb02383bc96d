package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter throttles repeated failures per arbitrary key, such as
// "ip|email" for login attempts. A key is limited once it collects maxFails
// failures inside the sliding window.
type MemoryLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
	window   time.Duration
	maxFails int
	now      func() time.Time
}

func NewMemoryLimiter(window time.Duration, maxFails int) *MemoryLimiter {
	return &MemoryLimiter{
		failures: make(map[string][]time.Time),
		window:   window,
		maxFails: maxFails,
		now:      time.Now,
	}
}

// TooMany reports whether the key has exhausted its failure budget. Stale
// failures are pruned as a side effect.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	recent := r.prune(key)

	return len(recent) >= r.maxFails
}

// Fail records one failure for the key.
func (r *MemoryLimiter) Fail(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failures[key] = append(r.prune(key), r.now())
}

// Reset forgets the key entirely. Called after a successful attempt so a
// legitimate user does not inherit their earlier typos.
func (r *MemoryLimiter) Reset(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.failures, key)
}

// prune drops failures that slid out of the window. Callers hold the lock.
func (r *MemoryLimiter) prune(key string) []time.Time {
	cutoff := r.now().Add(-r.window)

	recent := r.failures[key][:0]
	for _, stamp := range r.failures[key] {
		if stamp.After(cutoff) {
			recent = append(recent, stamp)
		}
	}

	if len(recent) == 0 {
		delete(r.failures, key)
		return nil
	}

	r.failures[key] = recent

	return recent
}
