package routes

import (
	"github.com/gin-gonic/gin"

	assethandlers "github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/asset"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/middleware"
	"github.com/tinytickets/tinytickets/internal/shared/authorization"
)

type AssetRouteConfig struct {
	AssetHandler   *assethandlers.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAssetRoutes(api *gin.RouterGroup, config *AssetRouteConfig) {
	user := config.AuthMiddleware.RequireTier(authorization.TierUser)
	admin := config.AuthMiddleware.RequireTier(authorization.TierAdmin)

	assets := api.Group("/assets")
	{
		assets.GET("", user, config.AssetHandler.ListIDs)
		assets.POST("", admin, config.AssetHandler.Create)
		assets.DELETE("", admin, config.AssetHandler.DeleteAll)

		// Must come BEFORE /:id
		assets.GET("/all", user, config.AssetHandler.ListAll)

		assets.GET("/:id", user, config.AssetHandler.Get)
		assets.PATCH("/:id", admin, config.AssetHandler.Update)
		assets.DELETE("/:id", admin, config.AssetHandler.Delete)
	}
}
