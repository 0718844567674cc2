package asset

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytickets/tinytickets/internal/application/asset/dto"
	"github.com/tinytickets/tinytickets/internal/application/asset/usecases"
	"github.com/tinytickets/tinytickets/internal/interfaces/http/handlers/testutil"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateUC struct {
	cmd    usecases.CreateAssetCommand
	result *dto.AssetDTO
	err    error
}

func (m *mockCreateUC) Execute(ctx context.Context, cmd usecases.CreateAssetCommand) (*dto.AssetDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.AssetDTO
	err    error
}

func (m *mockGetUC) Execute(ctx context.Context, id int64) (*dto.AssetDTO, error) {
	return m.result, m.err
}

type mockListIDsUC struct {
	result []int64
	err    error
}

func (m *mockListIDsUC) Execute(ctx context.Context) ([]int64, error) {
	return m.result, m.err
}

type mockListUC struct {
	result []*dto.AssetDTO
	err    error
}

func (m *mockListUC) Execute(ctx context.Context) ([]*dto.AssetDTO, error) {
	return m.result, m.err
}

type mockUpdateUC struct {
	cmd usecases.UpdateAssetCommand
	err error
}

func (m *mockUpdateUC) Execute(ctx context.Context, cmd usecases.UpdateAssetCommand) error {
	m.cmd = cmd
	return m.err
}

type mockDeleteUC struct {
	id  int64
	err error
}

func (m *mockDeleteUC) Execute(ctx context.Context, id int64) error {
	m.id = id
	return m.err
}

type mockDeleteAllUC struct {
	err error
}

func (m *mockDeleteAllUC) Execute(ctx context.Context) error {
	return m.err
}

type mocks struct {
	create    *mockCreateUC
	get       *mockGetUC
	listIDs   *mockListIDsUC
	list      *mockListUC
	update    *mockUpdateUC
	delete    *mockDeleteUC
	deleteAll *mockDeleteAllUC
}

func newTestHandler() (*AssetHandler, *mocks) {
	m := &mocks{
		create:    &mockCreateUC{},
		get:       &mockGetUC{},
		listIDs:   &mockListIDsUC{},
		list:      &mockListUC{},
		update:    &mockUpdateUC{},
		delete:    &mockDeleteUC{},
		deleteAll: &mockDeleteAllUC{},
	}
	h := NewAssetHandler(m.create, m.get, m.listIDs, m.list, m.update, m.delete, m.deleteAll, logger.NewNopLogger())
	return h, m
}

// =====================================================================
// Tests
// =====================================================================

func TestAssetHandler_ListIDs(t *testing.T) {
	h, m := newTestHandler()
	m.listIDs.result = []int64{1, 2, 5}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/assets", nil)
	h.ListIDs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[1,2,5]`, w.Body.String())
}

func TestAssetHandler_ListAll_Empty(t *testing.T) {
	h, m := newTestHandler()
	m.list.result = []*dto.AssetDTO{}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/assets/all", nil)
	h.ListAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAssetHandler_Get(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		result     *dto.AssetDTO
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "found",
			param:      "3",
			result:     &dto.AssetDTO{ID: 3, Title: "Printer", Description: "2nd floor"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			param:      "9",
			err:        errors.NewNotFoundError("asset not found"),
			wantStatus: http.StatusNotFound,
			wantType:   string(errors.ErrorTypeNotFound),
		},
		{
			name:       "non numeric id",
			param:      "abc",
			wantStatus: http.StatusBadRequest,
			wantType:   string(errors.ErrorTypeBadRequest),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler()
			m.get.result = tt.result
			m.get.err = tt.err

			c, w := testutil.NewTestContext(http.MethodGet, "/api/assets/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)
			h.Get(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantType == "" {
				var got dto.AssetDTO
				require.NoError(t, testutil.ParseResponse(w, &got))
				assert.Equal(t, *tt.result, got)
				return
			}
			info, err := testutil.ParseError(w)
			require.NoError(t, err)
			require.NotNil(t, info)
			assert.Equal(t, tt.wantType, info.Type)
		})
	}
}

func TestAssetHandler_Create(t *testing.T) {
	h, m := newTestHandler()
	m.create.result = &dto.AssetDTO{ID: 7, Title: "Beamer"}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/assets", map[string]any{
		"id":          99,
		"title":       "Beamer",
		"description": "room 4",
	})
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Beamer", m.create.cmd.Title)
	assert.Equal(t, "room 4", m.create.cmd.Description)

	var got dto.AssetDTO
	require.NoError(t, testutil.ParseResponse(w, &got))
	assert.Equal(t, int64(7), got.ID)
}

func TestAssetHandler_Create_MalformedBody(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewRawTestContext(http.MethodPost, "/api/assets", strings.NewReader(`{"title":`), "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	info, err := testutil.ParseError(w)
	require.NoError(t, err)
	assert.Equal(t, string(errors.ErrorTypeBadRequest), info.Type)
}

func TestAssetHandler_Update(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/assets/4", map[string]any{
		"id":    1,
		"title": "Renamed",
	})
	testutil.SetURLParam(c, "id", "4")
	h.Update(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, int64(4), m.update.cmd.ID)
	assert.Equal(t, "Renamed", m.update.cmd.Title)
}

func TestAssetHandler_Update_NotFound(t *testing.T) {
	h, m := newTestHandler()
	m.update.err = errors.NewNotFoundError("asset not found")

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/assets/4", map[string]any{"title": "x"})
	testutil.SetURLParam(c, "id", "4")
	h.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssetHandler_Delete(t *testing.T) {
	h, m := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/assets/6", nil)
	testutil.SetURLParam(c, "id", "6")
	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), m.delete.id)
}

func TestAssetHandler_DeleteAll_InternalErrorIsMasked(t *testing.T) {
	h, m := newTestHandler()
	m.deleteAll.err = errors.NewInternalError("failed to delete assets", "disk I/O error at /var/lib/db")

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/assets", nil)
	h.DeleteAll(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "/var/lib/db")
}
