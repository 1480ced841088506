package monitoring

import (
	"time"

	"github.com/gin-gonic/gin"
)

// slowRequestThreshold flags requests that should never take this long for
// a fixed-size computation.
const slowRequestThreshold = time.Second

// Middleware creates Gin middleware for request metrics and logging
func Middleware(metrics *Metrics, logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncrementRequest()

		ip := c.ClientIP()
		userAgent := c.GetHeader("User-Agent")
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		metrics.RecordResponseTime(duration)
		metrics.RecordRequestByStatus(statusCode)

		if statusCode >= 400 {
			metrics.IncrementError()
		}

		logger.RequestLogger(method, path, ip, userAgent, statusCode, duration)

		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				logger.APIErrorLogger(err.Err, method, path, ip, statusCode)
			}
		}

		if duration > slowRequestThreshold {
			logger.PerformanceLogger("slow_request", duration.Seconds(), "seconds")
		}
	}
}
