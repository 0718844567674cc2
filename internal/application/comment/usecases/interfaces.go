package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/comment/dto"
)

// Notifier sends a templated mail in the background.
type Notifier interface {
	Notify(ctx context.Context, template, to string, view any)
}

type CreateCommentExecutor interface {
	Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error)
}

type GetCommentExecutor interface {
	Execute(ctx context.Context, id int64) (*dto.CommentDTO, error)
}

type ListCommentIDsExecutor interface {
	Execute(ctx context.Context) ([]int64, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context) ([]*dto.CommentDTO, error)
}

type UpdateCommentExecutor interface {
	Execute(ctx context.Context, cmd UpdateCommentCommand) error
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, id int64) error
}

type DeleteAllCommentsExecutor interface {
	Execute(ctx context.Context) error
}
