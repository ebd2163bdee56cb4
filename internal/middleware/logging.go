package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finbuddy/internal/logger"
)

const requestIDKey = "requestID"

// RequestLogging returns a Gin middleware that logs each request with a unique
// request ID, method, path, status code, latency, client IP, and — once
// authentication has run — the caller's external identity.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		logger.Get().Infow("request", requestLogFields(c, requestID, latency)...)
	}
}

// requestLogFields builds the key/value pairs for the request log line. The
// external ID is only present on routes behind Authenticate; unauthenticated
// paths (health, dashboard) log without it.
func requestLogFields(c *gin.Context, requestID string, latency time.Duration) []interface{} {
	fields := []interface{}{
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency_ms", latency.Milliseconds(),
		"client_ip", c.ClientIP(),
	}
	if externalID := c.GetString(ExternalIDKey); externalID != "" {
		fields = append(fields, "external_id", externalID)
	}
	return fields
}
