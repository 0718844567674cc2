package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/application/ticket/dto"
	"github.com/tinytickets/tinytickets/internal/application/ticket/usecases"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

// UseCases groups the executors the ticket routes dispatch to.
type UseCases struct {
	Create      usecases.CreateTicketExecutor
	Get         usecases.GetTicketExecutor
	ListIDs     usecases.ListTicketIDsExecutor
	List        usecases.ListTicketsExecutor
	Update      usecases.UpdateTicketExecutor
	Delete      usecases.DeleteTicketExecutor
	DeleteAll   usecases.DeleteAllTicketsExecutor
	MailOpen    usecases.MailOpenTicketsExecutor
	Export      usecases.ExportTicketsExecutor
	UploadPhoto usecases.UploadPhotoExecutor
	GetPhoto    usecases.GetPhotoExecutor
	DeletePhoto usecases.DeletePhotoExecutor
}

type TicketHandler struct {
	uc     UseCases
	logger logger.Interface
}

func NewTicketHandler(uc UseCases, logger logger.Interface) *TicketHandler {
	return &TicketHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListIDs handles GET /api/tickets
func (h *TicketHandler) ListIDs(c *gin.Context) {
	ids, err := h.uc.ListIDs.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, ids)
}

// ListAll handles GET /api/tickets/all
func (h *TicketHandler) ListAll(c *gin.Context) {
	tickets, err := h.uc.List.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, tickets)
}

// Get handles GET /api/tickets/:id
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result)
}

// Create handles POST /api/tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.TicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		AssetID:      req.AssetID,
		Title:        req.Title,
		Creator:      req.Creator,
		CreatorMail:  req.CreatorMail,
		CreatorPhone: req.CreatorPhone,
		Description:  req.Description,
		Time:         req.Time.Time,
		IsClosed:     req.IsClosed,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// Update handles PATCH /api/tickets/:id
func (h *TicketHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.TicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Update.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		ID:           id,
		AssetID:      req.AssetID,
		Title:        req.Title,
		Creator:      req.Creator,
		CreatorMail:  req.CreatorMail,
		CreatorPhone: req.CreatorPhone,
		Description:  req.Description,
		Time:         req.Time.Time,
		IsClosed:     req.IsClosed,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Delete handles DELETE /api/tickets/:id
func (h *TicketHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// DeleteAll handles DELETE /api/tickets
func (h *TicketHandler) DeleteAll(c *gin.Context) {
	if err := h.uc.DeleteAll.Execute(c.Request.Context()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// MailOpen handles GET /api/tickets/mail_open
func (h *TicketHandler) MailOpen(c *gin.Context) {
	open, err := h.uc.MailOpen.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, open)
}

// Export handles GET /api/tickets/export
func (h *TicketHandler) Export(c *gin.Context) {
	html, err := h.uc.Export.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.HTMLResponse(c, http.StatusOK, html)
}
