package ticket

import "context"

// TicketRepository persists tickets. Missing rows surface as not found
// errors.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id int64) (*Ticket, error)
	ListIDs(ctx context.Context) ([]int64, error)
	// ListAll returns every ticket, newest first.
	ListAll(ctx context.Context) ([]*Ticket, error)
	// ListOpen returns tickets that are not closed, newest first.
	ListOpen(ctx context.Context) ([]*Ticket, error)
	// Update replaces every column of the stored ticket with the same id.
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// CommentRepository persists comments. Missing rows surface as not found
// errors.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	ListIDs(ctx context.Context) ([]int64, error)
	// ListAll returns every comment in id order.
	ListAll(ctx context.Context) ([]*Comment, error)
	// ListByTicketID returns the comments of one ticket, newest first.
	ListByTicketID(ctx context.Context, ticketID int64) ([]*Comment, error)
	Update(ctx context.Context, comment *Comment) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
