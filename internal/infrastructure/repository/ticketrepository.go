package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/mappers"
	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/models"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

var _ ticket.TicketRepository = (*TicketRepository)(nil)

type TicketRepository struct {
	baseRepository
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB, acquireTimeout time.Duration, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		baseRepository: newBaseRepository(db, acquireTimeout, log, "ticket"),
		mapper:         mappers.NewTicketMapper(),
	}
}

// Create inserts the ticket and reads the generated id back from the same
// statement.
func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx, cancel := r.conn(ctx)
	defer cancel()

	if err := tx.Create(model).Error; err != nil {
		return r.translate("create", err)
	}
	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	var model models.TicketModel
	if err := tx.First(&model, id).Error; err != nil {
		return nil, r.translate("get", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListIDs(ctx context.Context) ([]int64, error) {
	return r.listIDs(ctx, &models.TicketModel{})
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return r.list(ctx, "list", nil)
}

func (r *TicketRepository) ListOpen(ctx context.Context) ([]*ticket.Ticket, error) {
	return r.list(ctx, "list_open", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("is_closed = ?", false)
	})
}

func (r *TicketRepository) list(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]*ticket.Ticket, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	query := tx.Model(&models.TicketModel{})
	if scope != nil {
		query = query.Scopes(scope)
	}

	var list []models.TicketModel
	if err := query.Order("time DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, r.translate(op, err)
	}
	return r.mapper.ToDomainList(list)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	return r.replace(ctx, r.mapper.ToModel(t), t.ID())
}

func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.TicketModel{}, id)
}

func (r *TicketRepository) DeleteAll(ctx context.Context) error {
	return r.deleteAll(ctx, &models.TicketModel{})
}
