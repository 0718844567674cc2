package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
)

var (
	corsAllowHeaders = strings.Join([]string{
		constants.HeaderContentType, "Content-Length", "Accept", "Origin",
		constants.HeaderXRequestID, constants.HeaderXToken,
	}, ", ")
	corsAllowMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
)

// CORS ends preflight requests with 204. With allowAny set, the calling
// origin is echoed back so a frontend dev server on another port can use the
// API; production builds serve the frontend from the same origin.
func CORS(allowAny bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allowAny {
			origin := c.GetHeader("Origin")
			if origin == "" {
				origin = "*"
			}
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Expose-Headers", constants.HeaderXRequestID)
			h.Set("Access-Control-Max-Age", "86400")
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
