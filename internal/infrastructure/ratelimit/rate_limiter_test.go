package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func newTestLimiter() (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter()
	rl.now = clock.now
	return rl, clock
}

func TestRateLimiter_PriceCheckBurstAndRefill(t *testing.T) {
	rl, clock := newTestLimiter()

	for i := 0; i < priceCheckPolicy.MaxTokens; i++ {
		ok, _ := rl.Allow("uid-1", ActionPriceCheck)
		assert.True(t, ok, "request %d", i)
	}

	ok, wait := rl.Allow("uid-1", ActionPriceCheck)
	assert.False(t, ok)
	assert.Equal(t, 12*time.Second, wait)

	clock.t = clock.t.Add(5 * time.Second)
	_, wait = rl.Allow("uid-1", ActionPriceCheck)
	assert.Equal(t, 7*time.Second, wait)

	clock.t = clock.t.Add(7 * time.Second)
	ok, _ = rl.Allow("uid-1", ActionPriceCheck)
	assert.True(t, ok)
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter()
	rl.SetPolicy(ActionAIAssist, Policy{MaxTokens: 1, RefillRate: 1, RefillTime: time.Minute})

	ok, _ := rl.Allow("uid-1", ActionAIAssist)
	assert.True(t, ok)
	ok, _ = rl.Allow("uid-1", ActionAIAssist)
	assert.False(t, ok)

	ok, _ = rl.Allow("uid-2", ActionAIAssist)
	assert.True(t, ok)
	ok, _ = rl.Allow("uid-1", ActionPriceCheck)
	assert.True(t, ok)

	tokens, max := rl.Status("uid-1", ActionPriceCheck)
	assert.Equal(t, priceCheckPolicy.MaxTokens-1, tokens)
	assert.Equal(t, priceCheckPolicy.MaxTokens, max)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl, clock := newTestLimiter()
	rl.Allow("uid-1", "other")

	clock.t = clock.t.Add(2 * time.Hour)
	rl.Cleanup(time.Hour)

	tokens, max := rl.Status("uid-1", "other")
	assert.Zero(t, tokens)
	assert.Zero(t, max)
}
