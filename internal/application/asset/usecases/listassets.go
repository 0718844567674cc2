package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/asset/dto"
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type ListAssetIDsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetIDsUseCase(assetRepo asset.Repository, logger logger.Interface) *ListAssetIDsUseCase {
	return &ListAssetIDsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetIDsUseCase) Execute(ctx context.Context) ([]int64, error) {
	return uc.assetRepo.ListIDs(ctx)
}

// ListAssetsUseCase returns every asset ordered by title.
type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.Repository, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context) ([]*dto.AssetDTO, error) {
	assets, err := uc.assetRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err)
		return nil, err
	}
	return dto.ToAssetDTOList(assets), nil
}
