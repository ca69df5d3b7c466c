package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for one identity
type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastUsed   time.Time
}

// UserRateLimiter keeps one token bucket per identity (IP, session, ...).
// Buckets unused for longer than expiration are forgotten by Cleanup.
type UserRateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64 // tokens per second
	capacity   float64
	expiration time.Duration
	now        func() time.Time
	stop       chan struct{}
	stopOnce   sync.Once
}

// New creates a limiter refilling rate tokens per second up to capacity,
// and starts a janitor that drops idle buckets. Call Stop to release it.
func New(rate, capacity float64, expiration time.Duration) *UserRateLimiter {
	rl := newLimiter(rate, capacity, expiration, time.Now)
	go rl.janitor()
	return rl
}

// PerMinute allows n requests per minute with the given burst.
func PerMinute(n, burst float64) *UserRateLimiter {
	return New(n/60, burst, time.Hour)
}

func newLimiter(rate, capacity float64, expiration time.Duration, now func() time.Time) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        now,
		stop:       make(chan struct{}),
	}
}

// Allow reports whether identity may proceed, consuming a token if so.
func (rl *UserRateLimiter) Allow(identity string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[identity]
	if !ok {
		b = &bucket{tokens: rl.capacity, lastRefill: now}
		rl.buckets[identity] = b
	}
	b.lastUsed = now

	// Refill tokens based on elapsed time
	b.tokens = min(rl.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*rl.rate)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Cleanup removes buckets idle for longer than the expiration time.
func (rl *UserRateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.expiration)
	removed := 0
	for id, b := range rl.buckets {
		if b.lastUsed.Before(cutoff) {
			delete(rl.buckets, id)
			removed++
		}
	}
	return removed
}

func (rl *UserRateLimiter) janitor() {
	ticker := time.NewTicker(rl.expiration)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-rl.stop:
			return
		}
	}
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (rl *UserRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}
