package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/asset/dto"
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type GetAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *GetAssetUseCase) Execute(ctx context.Context, id int64) (*dto.AssetDTO, error) {
	a, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToAssetDTO(a), nil
}
