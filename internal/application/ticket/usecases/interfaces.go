package usecases

import (
	"context"
	"io"

	"github.com/tinytickets/tinytickets/internal/application/notification"
	"github.com/tinytickets/tinytickets/internal/application/ticket/dto"
)

// Notifier dispatches templated mails. Notify and NotifyWith return
// immediately; NotifySync delivers before returning. None of them report
// failures.
type Notifier interface {
	Notify(ctx context.Context, template, to string, view any)
	NotifyWith(ctx context.Context, template, to string, load notification.ViewLoader)
	NotifySync(ctx context.Context, template, to string, view any)
}

// PhotoStore keeps one photo per ticket id.
type PhotoStore interface {
	Store(ctx context.Context, id int64, r io.Reader) (string, error)
	Open(id int64) (io.ReadCloser, error)
	Delete(id int64) error
}

// TransactionRunner runs fn inside one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, id int64) (*dto.TicketDetailDTO, error)
}

type ListTicketIDsExecutor interface {
	Execute(ctx context.Context) ([]int64, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) ([]*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) error
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, id int64) error
}

type DeleteAllTicketsExecutor interface {
	Execute(ctx context.Context) error
}

type MailOpenTicketsExecutor interface {
	Execute(ctx context.Context) ([]*dto.TicketDTO, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context) (string, error)
}

type UploadPhotoExecutor interface {
	Execute(ctx context.Context, id int64, r io.Reader) (string, error)
}

type GetPhotoExecutor interface {
	Execute(ctx context.Context, id int64) (io.ReadCloser, error)
}

type DeletePhotoExecutor interface {
	Execute(ctx context.Context, id int64) error
}
