package usecases

import (
	"context"
	"sync"

	"github.com/tinytickets/tinytickets/internal/domain/ticket"
)

type mockTicketRepository struct {
	GetByIDFunc func(ctx context.Context, id int64) (*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error { return nil }

func (m *mockTicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListIDs(ctx context.Context) ([]int64, error) { return nil, nil }
func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) ListOpen(ctx context.Context) ([]*ticket.Ticket, error) {
	return nil, nil
}
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, id int64) error         { return nil }
func (m *mockTicketRepository) DeleteAll(ctx context.Context) error                { return nil }

type mockCommentRepository struct {
	CreateFunc    func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc   func(ctx context.Context, id int64) (*ticket.Comment, error)
	ListAllFunc   func(ctx context.Context) ([]*ticket.Comment, error)
	UpdateFunc    func(ctx context.Context, c *ticket.Comment) error
	DeleteFunc    func(ctx context.Context, id int64) error
	DeleteAllFunc func(ctx context.Context) error
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id int64) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListIDs(ctx context.Context) ([]int64, error) {
	return []int64{}, nil
}

func (m *mockCommentRepository) ListAll(ctx context.Context) ([]*ticket.Comment, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	return nil, nil
}

func (m *mockCommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCommentRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}

type notifyCall struct {
	template string
	to       string
	view     any
}

type mockNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

func (m *mockNotifier) Notify(ctx context.Context, template, to string, view any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, notifyCall{template: template, to: to, view: view})
}
