package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/application/comment/dto"
	"github.com/tinytickets/tinytickets/internal/application/comment/usecases"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

type CommentHandler struct {
	createUC    usecases.CreateCommentExecutor
	getUC       usecases.GetCommentExecutor
	listIDsUC   usecases.ListCommentIDsExecutor
	listUC      usecases.ListCommentsExecutor
	updateUC    usecases.UpdateCommentExecutor
	deleteUC    usecases.DeleteCommentExecutor
	deleteAllUC usecases.DeleteAllCommentsExecutor
	logger      logger.Interface
}

func NewCommentHandler(
	createUC usecases.CreateCommentExecutor,
	getUC usecases.GetCommentExecutor,
	listIDsUC usecases.ListCommentIDsExecutor,
	listUC usecases.ListCommentsExecutor,
	updateUC usecases.UpdateCommentExecutor,
	deleteUC usecases.DeleteCommentExecutor,
	deleteAllUC usecases.DeleteAllCommentsExecutor,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
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

// ListIDs handles GET /api/comments
func (h *CommentHandler) ListIDs(c *gin.Context) {
	ids, err := h.listIDsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, ids)
}

// ListAll handles GET /api/comments/all
func (h *CommentHandler) ListAll(c *gin.Context) {
	comments, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, comments)
}

// Get handles GET /api/comments/:id
func (h *CommentHandler) Get(c *gin.Context) {
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

// Create handles POST /api/comments
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCommentCommand{
		TicketID: req.TicketID,
		Time:     req.Time.Time,
		Creator:  req.Creator,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// Update handles PATCH /api/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update comment", "comment_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		ID:       id,
		TicketID: req.TicketID,
		Time:     req.Time.Time,
		Creator:  req.Creator,
		Content:  req.Content,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
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

// DeleteAll handles DELETE /api/comments
func (h *CommentHandler) DeleteAll(c *gin.Context) {
	if err := h.deleteAllUC.Execute(c.Request.Context()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}
