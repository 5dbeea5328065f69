package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"weatherornot/pkg/response"
)

// RateLimit throttles the oracle-backed routes per client IP. Limiters are
// kept in a bounded LRU so a scan of spoofed addresses cannot grow memory
// without bound.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.perMinute <= 0 {
			c.Next()
			return
		}

		limiter := m.limiterFor(c.ClientIP())
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s %s", c.ClientIP(), c.FullPath())
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m Middleware) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(clientIP); ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.perMinute)), m.perMinute)
	m.limiters.Add(clientIP, limiter)
	return limiter
}
