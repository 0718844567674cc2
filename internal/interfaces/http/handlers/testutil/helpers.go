// Package testutil builds gin contexts for handler tests without a router.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext returns a context for method and path. A non-nil body is
// encoded as JSON; a body that cannot be encoded panics.
func NewTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	if body == nil {
		return NewRawTestContext(method, path, nil, "")
	}
	payload, err := json.Marshal(body)
	if err != nil {
		panic("testutil: encode body: " + err.Error())
	}
	return NewRawTestContext(method, path, bytes.NewReader(payload), constants.ContentTypeJSON)
}

// NewRawTestContext sends body untouched, with contentType when it is set.
func NewRawTestContext(method, path string, body io.Reader, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, body)
	if contentType != "" {
		c.Request.Header.Set(constants.HeaderContentType, contentType)
	}
	return c, w
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// ParseError decodes the failure envelope and returns its error part.
func ParseError(w *httptest.ResponseRecorder) (*utils.ErrorInfo, error) {
	var resp utils.APIResponse
	if err := ParseResponse(w, &resp); err != nil {
		return nil, err
	}
	return resp.Error, nil
}
