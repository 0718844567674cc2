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

var _ ticket.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	baseRepository
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB, acquireTimeout time.Duration, log logger.Interface) *CommentRepository {
	return &CommentRepository{
		baseRepository: newBaseRepository(db, acquireTimeout, log, "comment"),
		mapper:         mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx, cancel := r.conn(ctx)
	defer cancel()

	if err := tx.Create(model).Error; err != nil {
		return r.translate("create", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*ticket.Comment, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	var model models.CommentModel
	if err := tx.First(&model, id).Error; err != nil {
		return nil, r.translate("get", err)
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListIDs(ctx context.Context) ([]int64, error) {
	return r.listIDs(ctx, &models.CommentModel{})
}

func (r *CommentRepository) ListAll(ctx context.Context) ([]*ticket.Comment, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	var list []models.CommentModel
	if err := tx.Order("id ASC").Find(&list).Error; err != nil {
		return nil, r.translate("list", err)
	}
	return r.mapper.CommentsToDomain(list)
}

func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Comment, error) {
	tx, cancel := r.conn(ctx)
	defer cancel()

	var list []models.CommentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("time DESC").
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, r.translate("list_by_ticket", err)
	}
	return r.mapper.CommentsToDomain(list)
}

func (r *CommentRepository) Update(ctx context.Context, c *ticket.Comment) error {
	return r.replace(ctx, r.mapper.CommentToModel(c), c.ID())
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, &models.CommentModel{}, id)
}

func (r *CommentRepository) DeleteAll(ctx context.Context) error {
	return r.deleteAll(ctx, &models.CommentModel{})
}
