package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytickets/tinytickets/internal/shared/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantType    string
		wantMessage string
	}{
		{
			name:        "not found keeps static message",
			err:         errors.NewNotFoundError("ticket not found", "record not found"),
			wantStatus:  http.StatusNotFound,
			wantType:    "not_found",
			wantMessage: "ticket not found",
		},
		{
			name:        "wrapped forbidden",
			err:         fmt.Errorf("guard: %w", errors.NewAccessDeniedError()),
			wantStatus:  http.StatusForbidden,
			wantType:    "forbidden",
			wantMessage: "access denied",
		},
		{
			name:        "plain error is masked",
			err:         fmt.Errorf("database is locked"),
			wantStatus:  http.StatusInternalServerError,
			wantType:    "internal_error",
			wantMessage: "Internal server error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, tt.wantMessage, resp.Error.Message)
			assert.NotContains(t, w.Body.String(), "record not found")
		})
	}
}

func TestParseIDParam(t *testing.T) {
	c, _ := newContext()
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, err := ParseIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, err = ParseIDParam(c, "id")
	assert.Equal(t, http.StatusBadRequest, errors.GetAppError(err).Code)
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		AssetID int64  `json:"asset_id" validate:"required"`
		Mail    string `json:"creator_mail" validate:"omitempty,email"`
	}

	assert.NoError(t, ValidateStruct(request{AssetID: 1}))

	err := ValidateStruct(request{Mail: "nope"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "asset_id is required")
	assert.Contains(t, err.Error(), "creator_mail must be a valid email address")
}

func TestMaskRecipients(t *testing.T) {
	assert.Equal(t, "a***@x.org,b***@y.org", MaskRecipients(" alice@x.org , bob@y.org,"))
	assert.Equal(t, "", MaskRecipients(" , "))
}

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"alice@example.com": "a***@example.com",
		"@example.com":      "***@example.com",
		"not-an-address":    "***",
	}
	for in, want := range tests {
		assert.Equal(t, want, MaskEmail(in), in)
	}
}

func TestBindJSON(t *testing.T) {
	type request struct {
		AssetID int64 `json:"asset_id" validate:"required"`
	}

	tests := []struct {
		name     string
		body     string
		wantType errors.ErrorType
	}{
		{name: "valid", body: `{"asset_id": 3}`},
		{name: "broken json", body: `{"asset_id":`, wantType: errors.ErrorTypeBadRequest},
		{name: "wrong type", body: `{"asset_id": "three"}`, wantType: errors.ErrorTypeBadRequest},
		{name: "rule failure", body: `{}`, wantType: errors.ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext()
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req request
			err := BindJSON(c, &req)
			if tt.wantType == "" {
				require.NoError(t, err)
				assert.Equal(t, int64(3), req.AssetID)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantType, errors.GetAppError(err).Type)
		})
	}
}
