package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/asset/dto"
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

type CreateAssetCommand struct {
	Title       string
	Description string
}

type CreateAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewCreateAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	a := asset.NewAsset(cmd.Title, cmd.Description)

	if err := uc.assetRepo.Create(ctx, a); err != nil {
		uc.logger.Errorw("failed to create asset", "error", err)
		return nil, err
	}

	uc.logger.Infow("asset created", "asset_id", a.ID())
	return dto.ToAssetDTO(a), nil
}
