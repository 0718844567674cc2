package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/ticket/dto"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type ListTicketIDsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketIDsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketIDsUseCase {
	return &ListTicketIDsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketIDsUseCase) Execute(ctx context.Context) ([]int64, error) {
	return uc.ticketRepo.ListIDs(ctx)
}

// ListTicketsUseCase returns every ticket, newest first.
type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]*dto.TicketDTO, error) {
	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}
	return dto.ToTicketDTOList(tickets), nil
}
