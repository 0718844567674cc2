package repository

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/shared/db"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// baseRepository carries what every repository needs: the pool, the bounded
// checkout and the mapping of driver errors onto the application taxonomy.
type baseRepository struct {
	db             *gorm.DB
	acquireTimeout time.Duration
	logger         logger.Interface
	entity         string
}

func newBaseRepository(gdb *gorm.DB, acquireTimeout time.Duration, log logger.Interface, entity string) baseRepository {
	return baseRepository{
		db:             gdb,
		acquireTimeout: acquireTimeout,
		logger:         log,
		entity:         entity,
	}
}

// conn returns a handle bound to ctx (or the transaction it carries) whose
// connection checkout is bounded by the acquire timeout. cancel must be
// called once the query is done.
func (r *baseRepository) conn(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := db.WithAcquireTimeout(ctx, r.acquireTimeout)
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx), cancel
}

// translate maps a gorm error onto NotFound or InternalError. Driver text is
// kept as error details for logging only.
func (r *baseRepository) translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFoundError(r.entity + " not found")
	}

	r.logger.Errorw("database operation failed", "entity", r.entity, "op", op, "error", err)
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewInternalError("database is busy").Wrap(err)
	}
	return errors.NewInternalError("database operation failed").Wrap(err)
}

func (r *baseRepository) notFound() error {
	return errors.NewNotFoundError(r.entity + " not found")
}

// deleteByID removes one row and reports NotFound unless exactly one row
// went away.
func (r *baseRepository) deleteByID(ctx context.Context, model interface{}, id int64) error {
	tx, cancel := r.conn(ctx)
	defer cancel()

	result := tx.Delete(model, id)
	if result.Error != nil {
		return r.translate("delete", result.Error)
	}
	if result.RowsAffected != 1 {
		return r.notFound()
	}
	return nil
}

func (r *baseRepository) deleteAll(ctx context.Context, model interface{}) error {
	tx, cancel := r.conn(ctx)
	defer cancel()

	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return r.translate("delete_all", err)
	}
	return nil
}

func (r *baseRepository) listIDs(ctx context.Context, model interface{}) ([]int64, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	ids := make([]int64, 0)
	if err := tx.Model(model).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, r.translate("list_ids", err)
	}
	return ids, nil
}

// replace overwrites every column of the row with model's id.
func (r *baseRepository) replace(ctx context.Context, model interface{}, id int64) error {
	tx, cancel := r.conn(ctx)
	defer cancel()

	result := tx.Model(model).Where("id = ?", id).Select("*").Updates(model)
	if result.Error != nil {
		return r.translate("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}
