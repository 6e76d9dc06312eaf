package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one access line per request.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		fields := []any{
			"request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			mw.l.Error(ctx, fields...)
		case status >= 400:
			mw.l.Warn(ctx, fields...)
		default:
			mw.l.Info(ctx, fields...)
		}
	}
}
