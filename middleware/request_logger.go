package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with the method, path, status and
// the caller's user agent.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		userAgent := c.GetHeader("User-Agent")
		if userAgent == "" {
			userAgent = "No User-Agent"
		}

		c.Next()

		log.Printf("\"%s %s\" %d %s (%s)",
			c.Request.Method,
			c.Request.URL.RequestURI(),
			c.Writer.Status(),
			userAgent,
			time.Since(start),
		)
	}
}
