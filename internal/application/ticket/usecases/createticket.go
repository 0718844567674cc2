package usecases

import (
	"context"
	"time"

	"github.com/tinytickets/tinytickets/internal/application/notification"
	"github.com/tinytickets/tinytickets/internal/application/ticket/dto"
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

const msgTicketWithoutAsset = "cannot create ticket related to non existing asset"

type CreateTicketCommand struct {
	AssetID      int64
	Title        string
	Creator      string
	CreatorMail  string
	CreatorPhone string
	Description  string
	Time         time.Time
	IsClosed     bool
}

// CreateTicketUseCase raises a ticket against an existing asset and tells
// the ticket mailbox about it.
type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	assetRepo  asset.Repository
	notifier   Notifier
	mailTo     string
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	assetRepo asset.Repository,
	notifier Notifier,
	mailTo string,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		assetRepo:  assetRepo,
		notifier:   notifier,
		mailTo:     mailTo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
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
		return nil, errors.NewNotFoundError(msgTicketWithoutAsset)
	}

	a, err := uc.assetRepo.GetByID(ctx, cmd.AssetID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("ticket refers to missing asset", "asset_id", cmd.AssetID)
			return nil, errors.NewNotFoundError(msgTicketWithoutAsset)
		}
		return nil, err
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "asset_id", t.AssetID())

	if uc.mailTo != "" {
		uc.notifier.Notify(ctx, notif.TemplateNewTicket, uc.mailTo, notification.NewTicketView(t, a))
	}

	return dto.ToTicketDTO(t), nil
}
