package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
)

// APIResponse wraps failures only. Successful calls return the bare
// resource, a plain text value or an empty body.
type APIResponse struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OKResponse and NoContentResponse flush the status line with no body.
func OKResponse(c *gin.Context) {
	emptyResponse(c, http.StatusOK)
}

func NoContentResponse(c *gin.Context) {
	emptyResponse(c, http.StatusNoContent)
}

func emptyResponse(c *gin.Context, statusCode int) {
	c.Status(statusCode)
	c.Writer.WriteHeaderNow()
}

func TextResponse(c *gin.Context, statusCode int, text string) {
	c.Data(statusCode, constants.ContentTypeText, []byte(text))
}

func HTMLResponse(c *gin.Context, statusCode int, html string) {
	c.Data(statusCode, constants.ContentTypeHTML, []byte(html))
}

// ErrorResponseWithError writes the failure envelope for err. Errors that
// are not AppErrors are reported as a generic internal error so driver or
// filesystem text never reaches the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		appErr = errors.NewInternalError(constants.ErrMsgInternalServerError)
	}
	c.JSON(appErr.Code, APIResponse{
		Error: &ErrorInfo{Type: string(appErr.Type), Message: appErr.Message},
	})
}

// AbortWithError writes the failure envelope and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	ErrorResponseWithError(c, err)
	c.Abort()
}
