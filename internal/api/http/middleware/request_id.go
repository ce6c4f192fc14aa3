package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/permit-checklist-backend/internal/logger"
)

const (
	HeaderRequestID = "X-Request-Id"
	CtxRequestID    = "request_id"
)

// RequestIDMiddleware ensures every request has a stable request ID.
// - Reads X-Request-Id header if present, otherwise generates a uuid
// - Stores it in the Gin context and a request-scoped logger in the request context
// - Echoes it back in the response header
// - Writes one access log entry (method, path, status, latency)
func RequestIDMiddleware(base *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if rid == "" {
			rid = uuid.New().String()
		}

		log := base.With(zap.String(CtxRequestID, rid))
		c.Set(CtxRequestID, rid)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))
		c.Writer.Header().Set(HeaderRequestID, rid)

		start := time.Now()
		c.Next()

		fields := []logger.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
			log.Error("http request", fields...)
			return
		}
		log.Info("http request", fields...)
	}
}
