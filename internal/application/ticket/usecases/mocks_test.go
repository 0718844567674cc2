package usecases

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/tinytickets/tinytickets/internal/application/notification"
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
)

type mockTicketRepository struct {
	CreateFunc    func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc   func(ctx context.Context, id int64) (*ticket.Ticket, error)
	ListIDsFunc   func(ctx context.Context) ([]int64, error)
	ListAllFunc   func(ctx context.Context) ([]*ticket.Ticket, error)
	ListOpenFunc  func(ctx context.Context) ([]*ticket.Ticket, error)
	UpdateFunc    func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc    func(ctx context.Context, id int64) error
	DeleteAllFunc func(ctx context.Context) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) ListIDs(ctx context.Context) ([]int64, error) {
	if m.ListIDsFunc != nil {
		return m.ListIDsFunc(ctx)
	}
	return []int64{}, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListOpen(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListOpenFunc != nil {
		return m.ListOpenFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

type mockCommentRepository struct {
	ListAllFunc        func(ctx context.Context) ([]*ticket.Comment, error)
	ListByTicketIDFunc func(ctx context.Context, ticketID int64) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error { return nil }
func (m *mockCommentRepository) GetByID(ctx context.Context, id int64) (*ticket.Comment, error) {
	return nil, errors.NewNotFoundError("comment not found")
}
func (m *mockCommentRepository) ListIDs(ctx context.Context) ([]int64, error) { return []int64{}, nil }

func (m *mockCommentRepository) ListAll(ctx context.Context) ([]*ticket.Comment, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error { return nil }
func (m *mockCommentRepository) Delete(ctx context.Context, id int64) error          { return nil }
func (m *mockCommentRepository) DeleteAll(ctx context.Context) error                 { return nil }

type mockAssetRepository struct {
	GetByIDFunc func(ctx context.Context, id int64) (*asset.Asset, error)
	ListAllFunc func(ctx context.Context) ([]*asset.Asset, error)
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error { return nil }

func (m *mockAssetRepository) GetByID(ctx context.Context, id int64) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.NewNotFoundError("asset not found")
}

func (m *mockAssetRepository) ListIDs(ctx context.Context) ([]int64, error) { return []int64{}, nil }

func (m *mockAssetRepository) ListAll(ctx context.Context) ([]*asset.Asset, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error { return nil }
func (m *mockAssetRepository) Delete(ctx context.Context, id int64) error       { return nil }
func (m *mockAssetRepository) DeleteAll(ctx context.Context) error              { return nil }

// passthroughTx runs fn directly and counts how often it was asked to.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type notifyCall struct {
	template string
	to       string
	view     any
	sync     bool
}

// mockNotifier records dispatches. NotifyWith loaders run inline so tests
// can inspect the produced view.
type mockNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

func (m *mockNotifier) record(call notifyCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockNotifier) Notify(ctx context.Context, template, to string, view any) {
	m.record(notifyCall{template: template, to: to, view: view})
}

func (m *mockNotifier) NotifyWith(ctx context.Context, template, to string, load notification.ViewLoader) {
	view, err := load(ctx)
	if err != nil {
		return
	}
	m.record(notifyCall{template: template, to: to, view: view})
}

func (m *mockNotifier) NotifySync(ctx context.Context, template, to string, view any) {
	m.record(notifyCall{template: template, to: to, view: view, sync: true})
}

type mockPhotoStore struct {
	StoreFunc  func(ctx context.Context, id int64, r io.Reader) (string, error)
	OpenFunc   func(id int64) (io.ReadCloser, error)
	DeleteFunc func(id int64) error
	deleted    []int64
}

func (m *mockPhotoStore) Store(ctx context.Context, id int64, r io.Reader) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, id, r)
	}
	return "", nil
}

func (m *mockPhotoStore) Open(id int64) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(id)
	}
	return io.NopCloser(bytes.NewReader(nil)), nil
}

func (m *mockPhotoStore) Delete(id int64) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type mockRenderer struct {
	RenderFunc func(name string, view any) (string, string, error)
}

func (m *mockRenderer) Render(name string, view any) (string, string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(name, view)
	}
	return "", "", nil
}
