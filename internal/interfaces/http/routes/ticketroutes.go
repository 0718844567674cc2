package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/ticket"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/middleware"
	"github.com/tinytickets/tinytickets/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	user := config.AuthMiddleware.RequireTier(authorization.TierUser)
	admin := config.AuthMiddleware.RequireTier(authorization.TierAdmin)

	tickets := api.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.GET("", user, config.TicketHandler.ListIDs)
		tickets.POST("", user, config.TicketHandler.Create)
		tickets.DELETE("", admin, config.TicketHandler.DeleteAll)

		tickets.GET("/all", user, config.TicketHandler.ListAll)
		tickets.GET("/mail_open", user, config.TicketHandler.MailOpen)
		tickets.GET("/export", user, config.TicketHandler.Export)

		// Photos are keyed by ticket id but not checked against the tickets table
		tickets.POST("/photos/:id", user, config.TicketHandler.UploadPhoto)
		tickets.GET("/photos/:id", user, config.TicketHandler.GetPhoto)
		tickets.DELETE("/photos/:id", user, config.TicketHandler.DeletePhoto)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", user, config.TicketHandler.Get)
		tickets.PATCH("/:id", admin, config.TicketHandler.Update)
		tickets.DELETE("/:id", admin, config.TicketHandler.Delete)
	}
}
