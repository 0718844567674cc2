package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/comment/dto"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type GetCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *GetCommentUseCase {
	return &GetCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetCommentUseCase) Execute(ctx context.Context, id int64) (*dto.CommentDTO, error) {
	c, err := uc.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCommentDTO(c), nil
}
