package mappers

import (
	"fmt"

	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/models"
	"github.com/tinytickets/tinytickets/internal/shared/mapper"
)

// TicketMapper handles the conversion between ticket and comment entities
// and their persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(models []models.TicketModel) ([]*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	CommentsToDomain(models []models.CommentModel) ([]*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		AssetID:      t.AssetID(),
		Title:        t.Title(),
		Creator:      t.Creator(),
		CreatorMail:  t.CreatorMail(),
		CreatorPhone: t.CreatorPhone(),
		Description:  t.Description(),
		Time:         t.Time().UTC(),
		IsClosed:     t.IsClosed(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.AssetID,
		model.Title,
		model.Creator,
		model.CreatorMail,
		model.CreatorPhone,
		model.Description,
		model.Time,
		model.IsClosed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket (id=%d): %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(list []models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceErr(list, func(row models.TicketModel) (*ticket.Ticket, error) {
		return m.ToDomain(&row)
	})
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:       c.ID(),
		TicketID: c.TicketID(),
		Time:     c.Time().UTC(),
		Creator:  c.Creator(),
		Content:  c.Content(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Time,
		model.Creator,
		model.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment (id=%d): %w", model.ID, err)
	}
	return c, nil
}

func (m *TicketMapperImpl) CommentsToDomain(list []models.CommentModel) ([]*ticket.Comment, error) {
	return mapper.MapSliceErr(list, func(row models.CommentModel) (*ticket.Comment, error) {
		return m.CommentToDomain(&row)
	})
}
