package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/authorization"
	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// Logger writes one access log line per request. 5xx responses log as
// errors, 4xx as warnings and everything else at debug level, so a quiet
// instance stays quiet at the default info level.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		fields := []any{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_bytes", c.Request.ContentLength,
			"response_bytes", c.Writer.Size(),
		}
		if tier := authorization.TierFromContext(c); tier.IsValid() {
			fields = append(fields, "tier", tier.String())
		}
		if id := c.GetHeader(constants.HeaderXRequestID); id != "" {
			fields = append(fields, "request_id", id)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}
