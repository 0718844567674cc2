package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// DeleteTicketUseCase removes one ticket and then its photo. Comments are
// left in place and a missing photo is not an error.
type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	photos     PhotoStore
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, photos PhotoStore, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		photos:     photos,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, id int64) error {
	err := uc.ticketRepo.Delete(ctx, id)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", id, "error", err)
		return err
	}

	uc.removePhoto(id)

	if err != nil {
		return err
	}
	uc.logger.Infow("ticket deleted", "ticket_id", id)
	return nil
}

func (uc *DeleteTicketUseCase) removePhoto(id int64) {
	if err := uc.photos.Delete(id); err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Debugw("ticket had no photo", "ticket_id", id)
			return
		}
		uc.logger.Warnw("failed to remove ticket photo", "ticket_id", id, "error", err)
	}
}

type DeleteAllTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteAllTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DeleteAllTicketsUseCase {
	return &DeleteAllTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteAllTicketsUseCase) Execute(ctx context.Context) error {
	if err := uc.ticketRepo.DeleteAll(ctx); err != nil {
		uc.logger.Errorw("failed to delete all tickets", "error", err)
		return err
	}

	uc.logger.Infow("all tickets deleted")
	return nil
}
