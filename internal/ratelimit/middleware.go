package ratelimit

import (
	"github.com/gin-gonic/gin"

	"github.com/orgkompass/orgkompass/internal/errors"
	"github.com/orgkompass/orgkompass/internal/monitoring"
)

// Middleware enforces per-IP rate limits on all routes it wraps.
func Middleware(limiter *Limiter, metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			metrics.IncrementRateLimited()

			appErr := errors.NewRateLimitError("60s")
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Next()
	}
}
