// Package ratelimit throttles API clients with per-endpoint token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// Buckets idle longer than this are dropped by the sweep goroutine.
const idleBucketTTL = time.Hour

// bucket is a token bucket for one client+endpoint+method combination.
// Tokens refill continuously at refillPerSec up to capacity.
type bucket struct {
	mu           sync.Mutex
	capacity     float64
	refillPerSec float64
	tokens       float64
	refilledAt   time.Time
	lastSeen     time.Time
}

func newBucket(capacity int, refillPerSec float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity:     float64(capacity),
		refillPerSec: refillPerSec,
		tokens:       float64(capacity),
		refilledAt:   now,
		lastSeen:     now,
	}
}

// refill credits tokens for the time elapsed since the last refill.
// Callers must hold b.mu.
func (b *bucket) refill(now time.Time) {
	b.tokens += now.Sub(b.refilledAt).Seconds() * b.refillPerSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilledAt = now
}

// take consumes one token if available and reports the bucket state after
// the attempt.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}
	return allowed, int(b.tokens), b.resetAt(now)
}

// resetAt returns when the bucket will be full again. Callers must hold b.mu.
func (b *bucket) resetAt(now time.Time) time.Time {
	deficit := b.capacity - b.tokens
	if deficit <= 0 {
		return now
	}
	return now.Add(time.Duration(deficit / b.refillPerSec * float64(time.Second)))
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the outcome of a rate limit check, for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks one token bucket per client+endpoint+method.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
}

// NewLimiter creates a rate limiter. A nil config enables limiting with the
// default tier only.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.sweepTicker = time.NewTicker(config.CleanupInterval)
		l.sweepStop = make(chan struct{})
		go l.sweep()
	}

	return l
}

// Allow reports whether a request from clientID to the given endpoint and
// method may proceed, along with header information. Whitelisted clients
// always pass, blacklisted clients never do.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	tier := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if tier == nil {
		tier = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// A non-positive limit marks the endpoint unlimited (health checks).
	if tier.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+endpoint+":"+method, tier)
	allowed, remaining, reset := b.take()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(reset); retryAfter < 0 {
			retryAfter = 0
		}
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      tier.Limit,
		Remaining:  remaining,
		ResetTime:  reset,
		RetryAfter: retryAfter,
	}
}

// bucketFor returns the bucket registered under key, creating it sized to
// the tier on first use.
func (l *Limiter) bucketFor(key string, tier *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := tier.Burst
	if capacity <= 0 {
		capacity = tier.Limit
	}
	b := newBucket(capacity, float64(tier.Limit)/tier.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) sweep() {
	for {
		select {
		case <-l.sweepTicker.C:
			l.dropIdleBuckets(time.Now().Add(-idleBucketTTL))
		case <-l.sweepStop:
			return
		}
	}
}

// dropIdleBuckets removes buckets not used since the cutoff so one-off
// clients do not accumulate forever.
func (l *Limiter) dropIdleBuckets(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop terminates the sweep goroutine.
func (l *Limiter) Stop() {
	if l.sweepTicker != nil {
		l.sweepTicker.Stop()
	}
	if l.sweepStop != nil {
		close(l.sweepStop)
	}
}
