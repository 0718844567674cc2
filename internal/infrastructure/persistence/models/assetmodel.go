package models

import "github.com/tinytickets/tinytickets/internal/shared/constants"

type AssetModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:text;not null;default:'';index"`
	Description string `gorm:"type:text;not null;default:''"`
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}
