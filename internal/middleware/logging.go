package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one access log line per request.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s -> %d (%s) ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s -> %d (%s) ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			mw.l.Infof(ctx, "%s %s -> %d (%s) ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
