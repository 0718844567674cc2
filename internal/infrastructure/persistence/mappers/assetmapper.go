package mappers

import (
	"fmt"

	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/models"
	"github.com/tinytickets/tinytickets/internal/shared/mapper"
)

// AssetMapper handles the conversion between assets and their persistence
// model.
type AssetMapper interface {
	ToModel(a *asset.Asset) *models.AssetModel
	ToDomain(model *models.AssetModel) (*asset.Asset, error)
	ToDomainList(models []models.AssetModel) ([]*asset.Asset, error)
}

type AssetMapperImpl struct{}

func NewAssetMapper() AssetMapper {
	return &AssetMapperImpl{}
}

func (m *AssetMapperImpl) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:          a.ID(),
		Title:       a.Title(),
		Description: a.Description(),
	}
}

func (m *AssetMapperImpl) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	a, err := asset.ReconstructAsset(model.ID, model.Title, model.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct asset (id=%d): %w", model.ID, err)
	}
	return a, nil
}

func (m *AssetMapperImpl) ToDomainList(list []models.AssetModel) ([]*asset.Asset, error) {
	return mapper.MapSliceErr(list, func(row models.AssetModel) (*asset.Asset, error) {
		return m.ToDomain(&row)
	})
}
