package http

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/interfaces/http/middleware"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/routes"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

const apiPrefix = "/api"

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.DebugMode))

	api := r.engine.Group(apiPrefix)
	routes.SetupAppRoutes(api, r.appHandler)
	routes.SetupAssetRoutes(api, &routes.AssetRouteConfig{
		AssetHandler:   r.assetHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupCommentRoutes(api, &routes.CommentRouteConfig{
		CommentHandler: r.commentHandler,
		AuthMiddleware: r.authMiddleware,
	})

	r.setupStaticRoutes()
}

// setupStaticRoutes serves the frontend for every GET the API does not
// claim. Everything else that matches no route gets the not_found envelope.
func (r *Router) setupStaticRoutes() {
	var files http.Handler
	if dir := r.cfg.Server.WebDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			files = http.FileServer(http.Dir(dir))
		} else {
			r.logger.Warnw("web directory not found, frontend disabled", "web_dir", dir)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		isAPI := c.Request.URL.Path == apiPrefix || strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/")
		isRead := c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead
		if files == nil || isAPI || !isRead {
			utils.ErrorResponseWithError(c, errors.NewNotFoundError("route not found"))
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown waits for queued notifications to finish.
func (r *Router) Shutdown() {
	r.notifier.Wait()
}
