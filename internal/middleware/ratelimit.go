package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"ai-health-platform/pkg/response"
)

// RateLimit applies a per-client-IP token bucket to public endpoints.
// Limiters are kept in memory for the lifetime of the process.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.RateLimit.PublicPerMin
	if perMin <= 0 {
		perMin = 30
	}
	burst := m.config.RateLimit.Burst
	if burst <= 0 {
		burst = 10
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limit := rate.Limit(float64(perMin) / 60.0)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(limit, burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: client %s throttled", ip)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
