package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/interfaces/http/handlers"
)

// SetupAppRoutes registers the routes that need no token.
func SetupAppRoutes(api *gin.RouterGroup, appHandler *handlers.AppHandler) {
	api.GET("/app-title", appHandler.Title)
}
