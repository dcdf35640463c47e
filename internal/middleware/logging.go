package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chayanin-dev/chat-relay/pkg/logger"
)

// AccessLog emits one structured log line per request
func AccessLog(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("host", c.Request.Host),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if tenant, ok := TenantFromContext(c); ok {
			fields = append(fields, zap.String("tenant_id", tenant.ID))
		}

		ctx := c.Request.Context()
		switch {
		case c.Writer.Status() >= 500:
			log.ErrorContext(ctx, "request completed", fields...)
		case c.Writer.Status() >= 400:
			log.WarnContext(ctx, "request completed", fields...)
		default:
			log.InfoContext(ctx, "request completed", fields...)
		}
	}
}
