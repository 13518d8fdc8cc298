package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	ActionAIAssist   = "ai_assist"
	ActionPriceCheck = "price_check"
)

// Policy sizes a bucket: MaxTokens burst, refilled by RefillRate tokens every RefillTime.
type Policy struct {
	MaxTokens  int
	RefillRate int
	RefillTime time.Duration
}

var (
	aiAssistPolicy   = Policy{MaxTokens: 10, RefillRate: 1, RefillTime: 6 * time.Second}
	priceCheckPolicy = Policy{MaxTokens: 5, RefillRate: 1, RefillTime: 12 * time.Second}
	defaultPolicy    = Policy{MaxTokens: 20, RefillRate: 1, RefillTime: 3 * time.Second}
)

// TokenBucket is a single caller's allowance for one action.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	lastSeen   time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(policy Policy, now time.Time) *TokenBucket {
	return &TokenBucket{
		tokens:     policy.MaxTokens,
		maxTokens:  policy.MaxTokens,
		refillRate: policy.RefillRate,
		refillTime: policy.RefillTime,
		lastRefill: now,
		lastSeen:   now,
	}
}

// Allow consumes a token if one is available; otherwise it reports how long
// until the next refill.
func (tb *TokenBucket) Allow(now time.Time) (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.lastSeen = now

	elapsed := now.Sub(tb.lastRefill)
	intervals := int(elapsed / tb.refillTime)
	if intervals > 0 {
		tb.tokens = min(tb.maxTokens, tb.tokens+intervals*tb.refillRate)
		tb.lastRefill = tb.lastRefill.Add(time.Duration(intervals) * tb.refillTime)
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	return false, tb.lastRefill.Add(tb.refillTime).Sub(now)
}

func (tb *TokenBucket) Tokens() int {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()
	return tb.tokens
}

// RateLimiter keeps one bucket per caller and action.
type RateLimiter struct {
	buckets  map[string]*TokenBucket
	policies map[string]Policy
	now      func() time.Time
	mutex    sync.RWMutex
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*TokenBucket),
		policies: map[string]Policy{
			ActionAIAssist:   aiAssistPolicy,
			ActionPriceCheck: priceCheckPolicy,
		},
		now: time.Now,
	}
}

// SetPolicy overrides the bucket size for an action. Existing buckets keep their old policy.
func (rl *RateLimiter) SetPolicy(action string, policy Policy) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	rl.policies[action] = policy
}

func (rl *RateLimiter) Allow(callerID, action string) (bool, time.Duration) {
	key := callerID + ":" + action
	now := rl.now()

	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()

	if !exists {
		rl.mutex.Lock()
		if bucket, exists = rl.buckets[key]; !exists {
			policy, ok := rl.policies[action]
			if !ok {
				policy = defaultPolicy
			}
			bucket = NewTokenBucket(policy, now)
			rl.buckets[key] = bucket
		}
		rl.mutex.Unlock()
	}

	return bucket.Allow(now)
}

// Status returns the remaining and maximum tokens, or zeros for an unknown caller.
func (rl *RateLimiter) Status(callerID, action string) (tokens int, maxTokens int) {
	rl.mutex.RLock()
	bucket, exists := rl.buckets[callerID+":"+action]
	rl.mutex.RUnlock()

	if !exists {
		return 0, 0
	}
	return bucket.Tokens(), bucket.maxTokens
}

// Cleanup drops buckets idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		idle := now.Sub(bucket.lastSeen)
		bucket.mutex.Unlock()
		if idle > maxIdle {
			delete(rl.buckets, key)
		}
	}
}

// StartCleanupRoutine prunes idle buckets every interval until ctx is done.
func (rl *RateLimiter) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rl.Cleanup(time.Hour)
			case <-ctx.Done():
				return
			}
		}
	}()
}
