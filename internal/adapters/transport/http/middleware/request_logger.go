package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request. Authorization and Cookie values
// never reach the log.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ts := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(ts)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		}

		switch {
		case len(c.Errors) > 0:
			for _, e := range c.Errors {
				log.Error("handler error", append(fields, zap.Error(e))...)
			}
		case c.Writer.Status() >= 500:
			log.Error("completed", fields...)
		default:
			log.Info("completed", fields...)
		}
	}
}
