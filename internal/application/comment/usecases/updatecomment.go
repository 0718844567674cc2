package usecases

import (
	"context"
	"time"

	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// UpdateCommentCommand replaces the comment identified by ID. A zero
// TicketID keeps the stored one; any other value is persisted as given.
type UpdateCommentCommand struct {
	ID       int64
	TicketID int64
	Time     time.Time
	Creator  string
	Content  string
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewUpdateCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) error {
	ticketID := cmd.TicketID
	if ticketID == 0 {
		current, err := uc.commentRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		ticketID = current.TicketID()
	}

	c, err := ticket.NewComment(ticketID, cmd.Time, cmd.Creator, cmd.Content)
	if err != nil {
		return errors.NewValidationError("ticket_id must be positive")
	}
	if err := c.SetID(cmd.ID); err != nil {
		return errors.NewNotFoundError("comment not found")
	}

	if err := uc.commentRepo.Update(ctx, c); err != nil {
		uc.logger.Warnw("failed to update comment", "comment_id", cmd.ID, "error", err)
		return err
	}

	uc.logger.Infow("comment updated", "comment_id", cmd.ID, "ticket_id", ticketID)
	return nil
}
