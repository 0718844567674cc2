package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// DeleteAssetUseCase removes one asset. Tickets raised against it are left
// in place.
type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *DeleteAssetUseCase) Execute(ctx context.Context, id int64) error {
	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		uc.logger.Warnw("failed to delete asset", "asset_id", id, "error", err)
		return err
	}

	uc.logger.Infow("asset deleted", "asset_id", id)
	return nil
}

type DeleteAllAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAllAssetsUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAllAssetsUseCase {
	return &DeleteAllAssetsUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *DeleteAllAssetsUseCase) Execute(ctx context.Context) error {
	if err := uc.assetRepo.DeleteAll(ctx); err != nil {
		uc.logger.Errorw("failed to delete all assets", "error", err)
		return err
	}

	uc.logger.Infow("all assets deleted")
	return nil
}
