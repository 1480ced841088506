package security

import (
	"github.com/gin-gonic/gin"
)

// HeadersMiddleware adds security headers to all responses. The service
// only serves JSON to the assessment frontend, so the CSP can stay strict.
// HSTS is opt-in and belongs only where HTTPS termination is in place.
func HeadersMiddleware(enableHSTS bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if enableHSTS {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}

		c.Next()
	}
}
