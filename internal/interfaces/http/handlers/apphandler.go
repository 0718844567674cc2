package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

// AppHandler serves instance level information that needs no token.
type AppHandler struct {
	title string
}

func NewAppHandler(title string) *AppHandler {
	return &AppHandler{title: title}
}

// Title handles GET /api/app-title
func (h *AppHandler) Title(c *gin.Context) {
	utils.TextResponse(c, http.StatusOK, h.title)
}
