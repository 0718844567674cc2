package ticket

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

const photoFormField = "file"

// UploadPhoto handles POST /api/tickets/photos/:id. The image is either the
// raw request body or the "file" part of a multipart form.
func (h *TicketHandler) UploadPhoto(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	body, closeBody, err := photoBody(c)
	if err != nil {
		h.logger.Warnw("invalid photo upload", "ticket_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError(constants.ErrMsgInvalidRequestBody, err.Error()))
		return
	}
	defer closeBody()

	path, err := h.uc.UploadPhoto.Execute(c.Request.Context(), id, body)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.TextResponse(c, http.StatusOK, path)
}

// GetPhoto handles GET /api/tickets/photos/:id
func (h *TicketHandler) GetPhoto(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rc, err := h.uc.GetPhoto.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, photoSize(rc), constants.ContentTypeJPEG, rc, nil)
}

// photoSize reports the stored file's length, or -1 to stream without a
// Content-Length header.
func photoSize(r io.Reader) int64 {
	f, ok := r.(interface{ Stat() (os.FileInfo, error) })
	if !ok {
		return -1
	}
	info, err := f.Stat()
	if err != nil {
		return -1
	}
	return info.Size()
}

// DeletePhoto handles DELETE /api/tickets/photos/:id
func (h *TicketHandler) DeletePhoto(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.DeletePhoto.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

func photoBody(c *gin.Context) (io.Reader, func(), error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return c.Request.Body, func() {}, nil
	}

	fh, err := c.FormFile(photoFormField)
	if err != nil {
		return nil, nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
