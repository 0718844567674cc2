package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/comment"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/middleware"
	"github.com/tinytickets/tinytickets/internal/shared/authorization"
)

type CommentRouteConfig struct {
	CommentHandler *commenthandlers.CommentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCommentRoutes(api *gin.RouterGroup, config *CommentRouteConfig) {
	user := config.AuthMiddleware.RequireTier(authorization.TierUser)
	admin := config.AuthMiddleware.RequireTier(authorization.TierAdmin)

	comments := api.Group("/comments")
	{
		comments.GET("", user, config.CommentHandler.ListIDs)
		comments.POST("", user, config.CommentHandler.Create)
		comments.DELETE("", admin, config.CommentHandler.DeleteAll)

		comments.GET("/all", user, config.CommentHandler.ListAll)

		comments.GET("/:id", user, config.CommentHandler.Get)
		comments.PATCH("/:id", admin, config.CommentHandler.Update)
		comments.DELETE("/:id", admin, config.CommentHandler.Delete)
	}
}
