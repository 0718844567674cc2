package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/domain/asset"
	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/mappers"
	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/models"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

var _ asset.Repository = (*AssetRepository)(nil)

type AssetRepository struct {
	baseRepository
	mapper mappers.AssetMapper
}

func NewAssetRepository(db *gorm.DB, acquireTimeout time.Duration, log logger.Interface) *AssetRepository {
	return &AssetRepository{
		baseRepository: newBaseRepository(db, acquireTimeout, log, "asset"),
		mapper:         mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx, cancel := r.conn(ctx)
	defer cancel()

	if err := tx.Create(model).Error; err != nil {
		return r.translate("create", err)
	}
	return a.SetID(model.ID)
}

func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*asset.Asset, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	var model models.AssetModel
	if err := tx.First(&model, id).Error; err != nil {
		return nil, r.translate("get", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AssetRepository) ListIDs(ctx context.Context) ([]int64, error) {
	return r.listIDs(ctx, &models.AssetModel{})
}

func (r *AssetRepository) ListAll(ctx context.Context) ([]*asset.Asset, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	var list []models.AssetModel
	if err := tx.Order("title ASC").Order("id ASC").Find(&list).Error; err != nil {
		return nil, r.translate("list", err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	return r.replace(ctx, r.mapper.ToModel(a), a.ID())
}

func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.AssetModel{}, id)
}

func (r *AssetRepository) DeleteAll(ctx context.Context) error {
	return r.deleteAll(ctx, &models.AssetModel{})
}
