package asset

import "context"

// Repository persists assets. Missing rows surface as not found errors.
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id int64) (*Asset, error)
	ListIDs(ctx context.Context) ([]int64, error)
	// ListAll returns every asset ordered by title.
	ListAll(ctx context.Context) ([]*Asset, error)
	// Update replaces every column of the stored asset with the same id.
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
