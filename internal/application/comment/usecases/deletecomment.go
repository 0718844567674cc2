package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.commentRepo.Delete(ctx, id); err != nil {
		uc.logger.Warnw("failed to delete comment", "comment_id", id, "error", err)
		return err
	}

	uc.logger.Infow("comment deleted", "comment_id", id)
	return nil
}

type DeleteAllCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteAllCommentsUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteAllCommentsUseCase {
	return &DeleteAllCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteAllCommentsUseCase) Execute(ctx context.Context) error {
	if err := uc.commentRepo.DeleteAll(ctx); err != nil {
		uc.logger.Errorw("failed to delete all comments", "error", err)
		return err
	}

	uc.logger.Infow("all comments deleted")
	return nil
}
