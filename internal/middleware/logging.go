package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mymoney/internal/logger"
)

// RequestIDKey is the Gin context key under which the per-request ID is
// stored. Error and audit logging read it to correlate entries.
const RequestIDKey = "requestID"

// RequestLogging assigns each request an ID (honoring an inbound
// X-Request-ID from a proxy), echoes it in the response header, and logs
// one line per request with timing, outcome, and the authenticated user
// when there is one.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID := c.GetUint("userID"); userID != 0 {
			fields = append(fields, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		logger.Get().Infow("request", fields...)
	}
}
