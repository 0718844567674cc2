package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// UpdateAssetCommand replaces the asset identified by ID. ID comes from the
// request path, never from the body.
type UpdateAssetCommand struct {
	ID          int64
	Title       string
	Description string
}

type UpdateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewUpdateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *UpdateAssetUseCase {
	return &UpdateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *UpdateAssetUseCase) Execute(ctx context.Context, cmd UpdateAssetCommand) error {
	a := asset.NewAsset(cmd.Title, cmd.Description)
	if err := a.SetID(cmd.ID); err != nil {
		return errors.NewNotFoundError("asset not found")
	}

	if err := uc.assetRepo.Update(ctx, a); err != nil {
		uc.logger.Warnw("failed to update asset", "asset_id", cmd.ID, "error", err)
		return err
	}

	uc.logger.Infow("asset updated", "asset_id", cmd.ID)
	return nil
}
