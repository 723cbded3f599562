package utils

import (
	"sync"
	"time"
)

// TokenBucket is an in-process token bucket rate limiter. Tokens
// refill continuously at rate per second up to capacity, so short
// bursts are absorbed while the sustained rate is bounded.
type TokenBucket struct {
	mu       sync.Mutex
	capacity int64
	rate     int64 // tokens per second
	tokens   float64
	last     time.Time
}

// NewTokenBucket creates a bucket that starts full.
// capacity: burst size. rate: allowed requests per second.
func NewTokenBucket(capacity, rate int64) *TokenBucket {
	return &TokenBucket{
		capacity: capacity,
		rate:     rate,
		tokens:   float64(capacity),
		last:     time.Now(),
	}
}

// AllowN takes n tokens if available and reports whether it could.
func (b *TokenBucket) AllowN(n int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())
	if b.tokens < float64(n) {
		return false
	}
	b.tokens -= float64(n)
	return true
}

// WaitN blocks until n tokens are available or timeout elapses.
// Returns false if the tokens could not be acquired in time.
func (b *TokenBucket) WaitN(n int64, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if b.AllowN(n) {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		// Sleep roughly until the next token should exist.
		interval := time.Second / time.Duration(max(b.rate, 1))
		if interval > 10*time.Millisecond {
			interval = 10 * time.Millisecond
		}
		time.Sleep(interval)
	}
}

// refill credits tokens for the time elapsed since the last update.
// Callers must hold b.mu.
func (b *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(b.last).Seconds()
	if elapsed <= 0 {
		return
	}
	b.tokens += elapsed * float64(b.rate)
	if b.tokens > float64(b.capacity) {
		b.tokens = float64(b.capacity)
	}
	b.last = now
}
