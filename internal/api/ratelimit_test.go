package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 1, time.Minute)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := start
	limiter.now = func() time.Time { return clock }
	limiter.lastSweep = start

	limiter.getLimiter("10.0.0.1")
	clock = start.Add(30 * time.Second)
	limiter.getLimiter("10.0.0.2")
	assert.Equal(t, 2, limiter.Len())

	// 10.0.0.1 has been idle a full minute, 10.0.0.2 only 30s
	clock = start.Add(time.Minute)
	limiter.getLimiter("10.0.0.3")
	assert.Equal(t, 2, limiter.Len())
	assert.NotContains(t, limiter.ips, "10.0.0.1")
	assert.Contains(t, limiter.ips, "10.0.0.2")

	// no sweep until another idle period has passed
	clock = start.Add(100 * time.Second)
	limiter.getLimiter("10.0.0.4")
	assert.Equal(t, 3, limiter.Len())

	clock = start.Add(10 * time.Minute)
	limiter.getLimiter("10.0.0.4")
	assert.Equal(t, 1, limiter.Len())
}

func TestIPRateLimiterKeepsBucketState(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.001), 1, time.Minute)

	assert.True(t, limiter.getLimiter("10.0.0.1").Allow())
	assert.False(t, limiter.getLimiter("10.0.0.1").Allow())
	assert.True(t, limiter.getLimiter("10.0.0.2").Allow())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/sections", nil)
	req.RemoteAddr = "192.0.2.7:51234"
	assert.Equal(t, "192.0.2.7", clientIP(req))

	req.RemoteAddr = "192.0.2.7"
	assert.Equal(t, "192.0.2.7", clientIP(req))
}
