package usecases

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/domain/asset"
)

type mockAssetRepository struct {
	CreateFunc    func(ctx context.Context, a *asset.Asset) error
	GetByIDFunc   func(ctx context.Context, id int64) (*asset.Asset, error)
	ListIDsFunc   func(ctx context.Context) ([]int64, error)
	ListAllFunc   func(ctx context.Context) ([]*asset.Asset, error)
	UpdateFunc    func(ctx context.Context, a *asset.Asset) error
	DeleteFunc    func(ctx context.Context, id int64) error
	DeleteAllFunc func(ctx context.Context) error
}

func (m *mockAssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id int64) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAssetRepository) ListIDs(ctx context.Context) ([]int64, error) {
	if m.ListIDsFunc != nil {
		return m.ListIDsFunc(ctx)
	}
	return []int64{}, nil
}

func (m *mockAssetRepository) ListAll(ctx context.Context) ([]*asset.Asset, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAssetRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}
