package usecases

import (
	"context"
	"time"

	"github.com/tinytickets/tinytickets/internal/application/comment/dto"
	"github.com/tinytickets/tinytickets/internal/application/notification"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

const msgCommentWithoutTicket = "cannot create comment related to non existing ticket"

type CreateCommentCommand struct {
	TicketID int64
	Time     time.Time
	Creator  string
	Content  string
}

// CreateCommentUseCase stores a reply on an existing ticket and tells the
// comment mailbox about it.
type CreateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	ticketRepo  ticket.TicketRepository
	notifier    Notifier
	mailTo      string
	logger      logger.Interface
}

func NewCreateCommentUseCase(
	commentRepo ticket.CommentRepository,
	ticketRepo ticket.TicketRepository,
	notifier Notifier,
	mailTo string,
	logger logger.Interface,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		notifier:    notifier,
		mailTo:      mailTo,
		logger:      logger,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error) {
	c, err := ticket.NewComment(cmd.TicketID, cmd.Time, cmd.Creator, cmd.Content)
	if err != nil {
		return nil, errors.NewNotFoundError(msgCommentWithoutTicket)
	}

	parent, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("comment refers to missing ticket", "ticket_id", cmd.TicketID)
			return nil, errors.NewNotFoundError(msgCommentWithoutTicket)
		}
		return nil, err
	}

	if err := uc.commentRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment created", "comment_id", c.ID(), "ticket_id", c.TicketID())

	if uc.mailTo != "" {
		uc.notifier.Notify(ctx, notif.TemplateNewComment, uc.mailTo, notification.NewCommentView(c, parent))
	}

	return dto.ToCommentDTO(c), nil
}
