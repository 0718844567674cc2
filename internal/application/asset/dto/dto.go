package dto

import (
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/shared/mapper"
)

// AssetRequest is the body of asset create and update calls. ID is accepted
// for compatibility and ignored; the store or the path decides it.
type AssetRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AssetDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func ToAssetDTO(a *asset.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	return &AssetDTO{
		ID:          a.ID(),
		Title:       a.Title(),
		Description: a.Description(),
	}
}

func ToAssetDTOList(assets []*asset.Asset) []*AssetDTO {
	return mapper.MapSlice(assets, ToAssetDTO)
}
