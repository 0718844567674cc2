package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/ticket/dto"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// GetTicketUseCase reads a ticket and its comments in one transaction.
type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       TransactionRunner
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, id int64) (*dto.TicketDetailDTO, error) {
	detail, err := loadDetail(ctx, uc.ticketRepo, uc.commentRepo, uc.txMgr, id)
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDetailDTO(detail), nil
}

func loadDetail(
	ctx context.Context,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr TransactionRunner,
	id int64,
) (*ticket.Detail, error) {
	var detail ticket.Detail
	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := ticketRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		comments, err := commentRepo.ListByTicketID(txCtx, id)
		if err != nil {
			return err
		}
		detail = ticket.Detail{Ticket: t, Comments: comments}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
