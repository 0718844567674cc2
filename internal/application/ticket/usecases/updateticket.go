package usecases

import (
	"context"
	"time"

	"github.com/tinytickets/tinytickets/internal/application/notification"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// UpdateTicketCommand replaces the ticket identified by ID. ID comes from
// the request path, never from the body.
type UpdateTicketCommand struct {
	ID           int64
	AssetID      int64
	Title        string
	Creator      string
	CreatorMail  string
	CreatorPhone string
	Description  string
	Time         time.Time
	IsClosed     bool
}

// UpdateTicketUseCase replaces a ticket. Closing an open ticket mails its
// creator the final state and the discussion.
type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       TransactionRunner
	notifier    Notifier
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	previous, err := uc.ticketRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	t, err := ticket.NewTicket(
		cmd.AssetID,
		cmd.Title,
		cmd.Creator,
		cmd.CreatorMail,
		cmd.CreatorPhone,
		cmd.Description,
		cmd.Time,
		cmd.IsClosed,
	)
	if err != nil {
		return errors.NewValidationError("asset_id must be positive")
	}
	if err := t.SetID(cmd.ID); err != nil {
		return errors.NewNotFoundError("ticket not found")
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Warnw("failed to update ticket", "ticket_id", cmd.ID, "error", err)
		return err
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.ID, "is_closed", t.IsClosed())

	if t.ClosesFrom(previous) {
		id := t.ID()
		uc.notifier.NotifyWith(ctx, notif.TemplateClosedTicket, t.CreatorMail(), func(ctx context.Context) (any, error) {
			detail, err := loadDetail(ctx, uc.ticketRepo, uc.commentRepo, uc.txMgr, id)
			if err != nil {
				return nil, err
			}
			return notification.ClosedTicketView(detail), nil
		})
	}

	return nil
}
