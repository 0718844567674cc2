package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/comment/dto"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type ListCommentIDsUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentIDsUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *ListCommentIDsUseCase {
	return &ListCommentIDsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentIDsUseCase) Execute(ctx context.Context) ([]int64, error) {
	return uc.commentRepo.ListIDs(ctx)
}

// ListCommentsUseCase returns every comment in store order.
type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context) ([]*dto.CommentDTO, error) {
	comments, err := uc.commentRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err)
		return nil, err
	}
	return dto.ToCommentDTOList(comments), nil
}
