package dto

import (
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/biztime"
	"github.com/tinytickets/tinytickets/internal/shared/mapper"
)

// CreateCommentRequest is the body of POST /api/comments.
type CreateCommentRequest struct {
	ID       int64             `json:"id"`
	TicketID int64             `json:"ticket_id" validate:"required,gt=0"`
	Time     biztime.NaiveTime `json:"time"`
	Creator  string            `json:"creator"`
	Content  string            `json:"content"`
}

// UpdateCommentRequest is the body of PATCH /api/comments/:id. A zero
// ticket_id keeps the comment on its current ticket.
type UpdateCommentRequest struct {
	ID       int64             `json:"id"`
	TicketID int64             `json:"ticket_id" validate:"gte=0"`
	Time     biztime.NaiveTime `json:"time"`
	Creator  string            `json:"creator"`
	Content  string            `json:"content"`
}

type CommentDTO struct {
	ID       int64             `json:"id"`
	TicketID int64             `json:"ticket_id"`
	Time     biztime.NaiveTime `json:"time"`
	Creator  string            `json:"creator"`
	Content  string            `json:"content"`
}

func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}
	return &CommentDTO{
		ID:       c.ID(),
		TicketID: c.TicketID(),
		Time:     biztime.NewNaiveTime(c.Time()),
		Creator:  c.Creator(),
		Content:  c.Content(),
	}
}

func ToCommentDTOList(comments []*ticket.Comment) []*CommentDTO {
	return mapper.MapSlice(comments, ToCommentDTO)
}
