package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"dealership-concierge/pkg/response"
)

const (
	limiterCacheSize = 1024
	limiterCacheTTL  = 10 * time.Minute
)

// RateLimiter enforces a per-sender request budget. Senders are keyed by the
// webhook's From field, falling back to client IP, each with its own token
// bucket kept in an expirable cache.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	perMin   int
}

// NewRateLimiter creates a limiter allowing perMin requests per minute per
// sender. A non-positive perMin disables limiting.
func NewRateLimiter(perMin int) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterCacheTTL),
		perMin:   perMin,
	}
}

// Allow reports whether the sender has budget left.
func (rl *RateLimiter) Allow(key string) bool {
	if rl.perMin <= 0 {
		return true
	}
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(rl.perMin)/60.0), rl.perMin)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit is the gin middleware wrapping Allow.
func (m Middleware) RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.PostForm("From")
		if key == "" {
			key = c.ClientIP()
		}
		if !rl.Allow(key) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
