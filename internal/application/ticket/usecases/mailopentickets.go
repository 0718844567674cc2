package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/notification"
	"github.com/tinytickets/tinytickets/internal/application/ticket/dto"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// MailOpenTicketsUseCase mails a digest of every open ticket to the ticket
// mailbox before answering. The list is returned even when sending fails.
type MailOpenTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	notifier   Notifier
	mailTo     string
	logger     logger.Interface
}

func NewMailOpenTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	mailTo string,
	logger logger.Interface,
) *MailOpenTicketsUseCase {
	return &MailOpenTicketsUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		mailTo:     mailTo,
		logger:     logger,
	}
}

func (uc *MailOpenTicketsUseCase) Execute(ctx context.Context) ([]*dto.TicketDTO, error) {
	open, err := uc.ticketRepo.ListOpen(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list open tickets", "error", err)
		return nil, err
	}

	if len(open) > 0 && uc.mailTo != "" {
		uc.notifier.NotifySync(ctx, notif.TemplateOpenTickets, uc.mailTo, notification.OpenTicketsView(open))
	}

	return dto.ToTicketDTOList(open), nil
}
