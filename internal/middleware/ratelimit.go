package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects requests beyond the configured budget with 429. One
// shared token bucket: the expensive resource is the LLM backends, not any
// one caller.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded, try again shortly",
			})
			return
		}
		c.Next()
	}
}
