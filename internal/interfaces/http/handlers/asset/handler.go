package asset

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/application/asset/dto"
	"github.com/tinytickets/tinytickets/internal/application/asset/usecases"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

type AssetHandler struct {
	createUC    usecases.CreateAssetExecutor
	getUC       usecases.GetAssetExecutor
	listIDsUC   usecases.ListAssetIDsExecutor
	listUC      usecases.ListAssetsExecutor
	updateUC    usecases.UpdateAssetExecutor
	deleteUC    usecases.DeleteAssetExecutor
	deleteAllUC usecases.DeleteAllAssetsExecutor
	logger      logger.Interface
}

func NewAssetHandler(
	createUC usecases.CreateAssetExecutor,
	getUC usecases.GetAssetExecutor,
	listIDsUC usecases.ListAssetIDsExecutor,
	listUC usecases.ListAssetsExecutor,
	updateUC usecases.UpdateAssetExecutor,
	deleteUC usecases.DeleteAssetExecutor,
	deleteAllUC usecases.DeleteAllAssetsExecutor,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createUC:    createUC,
		getUC:       getUC,
		listIDsUC:   listIDsUC,
		listUC:      listUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		deleteAllUC: deleteAllUC,
		logger:      logger,
	}
}

// ListIDs handles GET /api/assets
func (h *AssetHandler) ListIDs(c *gin.Context) {
	ids, err := h.listIDsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, ids)
}

// ListAll handles GET /api/assets/all
func (h *AssetHandler) ListAll(c *gin.Context) {
	assets, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, assets)
}

// Get handles GET /api/assets/:id
func (h *AssetHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Create handles POST /api/assets
func (h *AssetHandler) Create(c *gin.Context) {
	var req dto.AssetRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateAssetCommand{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// Update handles PATCH /api/assets/:id
func (h *AssetHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AssetRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update asset", "asset_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateAssetCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Delete handles DELETE /api/assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// DeleteAll handles DELETE /api/assets
func (h *AssetHandler) DeleteAll(c *gin.Context) {
	if err := h.deleteAllUC.Execute(c.Request.Context()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}
