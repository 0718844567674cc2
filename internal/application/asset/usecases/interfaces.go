package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/application/asset/dto"
)

type CreateAssetExecutor interface {
	Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error)
}

type GetAssetExecutor interface {
	Execute(ctx context.Context, id int64) (*dto.AssetDTO, error)
}

type ListAssetIDsExecutor interface {
	Execute(ctx context.Context) ([]int64, error)
}

type ListAssetsExecutor interface {
	Execute(ctx context.Context) ([]*dto.AssetDTO, error)
}

type UpdateAssetExecutor interface {
	Execute(ctx context.Context, cmd UpdateAssetCommand) error
}

type DeleteAssetExecutor interface {
	Execute(ctx context.Context, id int64) error
}

type DeleteAllAssetsExecutor interface {
	Execute(ctx context.Context) error
}
