package limiter

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a client may make another request
type Limiter interface {
	// Allow reports whether a request from client is allowed right now
	Allow(ctx context.Context, client string) bool

	// Close releases connections or other resources
	Close() error
}

// bucketIdleTimeout is how long an unused bucket is kept
const bucketIdleTimeout = 5 * time.Minute

// TokenBucket is a token bucket for a single client.
// Tokens refill at refillRate per second up to capacity; each request takes one.
type TokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64
	lastRefill time.Time
}

// NewTokenBucket creates a full bucket. Capacity is at least one token so
// fractional rates still admit a first request.
func NewTokenBucket(rate, capacity float64, now time.Time) *TokenBucket {
	capacity = max(capacity, 1.0)
	return &TokenBucket{
		tokens:     capacity,
		capacity:   capacity,
		refillRate: rate,
		lastRefill: now,
	}
}

// Take refills the bucket up to now and consumes a token if one is available
func (tb *TokenBucket) Take(now time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	elapsed := now.Sub(tb.lastRefill).Seconds()
	if elapsed > 0 {
		tb.tokens = min(tb.tokens+elapsed*tb.refillRate, tb.capacity)
		tb.lastRefill = now
	}

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

func (tb *TokenBucket) idleSince() time.Time {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.lastRefill
}

// MemoryLimiter keeps one token bucket per client in process memory.
// Suitable for a single server instance.
type MemoryLimiter struct {
	buckets sync.Map // client -> *TokenBucket
	rate    float64
	now     func() time.Time

	cleanupMu   sync.Mutex
	lastCleanup time.Time
}

// NewMemoryLimiter creates an in-memory limiter allowing requestsPerSecond
// per client, with a burst of one second's worth of requests.
func NewMemoryLimiter(requestsPerSecond float64) *MemoryLimiter {
	return &MemoryLimiter{
		rate:        requestsPerSecond,
		now:         time.Now,
		lastCleanup: time.Now(),
	}
}

// Allow implements Limiter
func (rl *MemoryLimiter) Allow(ctx context.Context, client string) bool {
	now := rl.now()
	allowed := rl.bucket(client, now).Take(now)
	rl.maybeCleanup(now)
	return allowed
}

func (rl *MemoryLimiter) bucket(client string, now time.Time) *TokenBucket {
	if value, ok := rl.buckets.Load(client); ok {
		return value.(*TokenBucket)
	}
	actual, _ := rl.buckets.LoadOrStore(client, NewTokenBucket(rl.rate, rl.rate, now))
	return actual.(*TokenBucket)
}

// maybeCleanup drops buckets idle for bucketIdleTimeout, at most once per timeout
func (rl *MemoryLimiter) maybeCleanup(now time.Time) {
	rl.cleanupMu.Lock()
	defer rl.cleanupMu.Unlock()

	if now.Sub(rl.lastCleanup) < bucketIdleTimeout {
		return
	}

	threshold := now.Add(-bucketIdleTimeout)
	rl.buckets.Range(func(key, value interface{}) bool {
		if value.(*TokenBucket).idleSince().Before(threshold) {
			rl.buckets.Delete(key)
		}
		return true
	})

	rl.lastCleanup = now
}

// Len returns the number of tracked clients
func (rl *MemoryLimiter) Len() int {
	n := 0
	rl.buckets.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// Close implements Limiter; nothing to release
func (rl *MemoryLimiter) Close() error {
	return nil
}
