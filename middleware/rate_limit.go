package middleware

import (
	"net/http"
	"sync"

	"affiliate-hub/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit limits requests per client IP with a token bucket. Used on the
// chatbot endpoint to keep one visitor from draining the AI quota.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = map[string]*rate.Limiter{}
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Success: false,
				Message: "Too many requests, slow down",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
