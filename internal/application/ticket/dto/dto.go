package dto

import (
	commentdto "github.com/tinytickets/tinytickets/internal/application/comment/dto"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/biztime"
	"github.com/tinytickets/tinytickets/internal/shared/mapper"
)

// TicketRequest is the body of ticket create and update calls. ID is
// ignored; the store or the path decides it.
type TicketRequest struct {
	ID           int64             `json:"id"`
	AssetID      int64             `json:"asset_id" validate:"required,gt=0"`
	Title        string            `json:"title"`
	Creator      string            `json:"creator"`
	CreatorMail  string            `json:"creator_mail"`
	CreatorPhone string            `json:"creator_phone"`
	Description  string            `json:"description"`
	Time         biztime.NaiveTime `json:"time"`
	IsClosed     bool              `json:"is_closed"`
}

type TicketDTO struct {
	ID           int64             `json:"id"`
	AssetID      int64             `json:"asset_id"`
	Title        string            `json:"title"`
	Creator      string            `json:"creator"`
	CreatorMail  string            `json:"creator_mail"`
	CreatorPhone string            `json:"creator_phone"`
	Description  string            `json:"description"`
	Time         biztime.NaiveTime `json:"time"`
	IsClosed     bool              `json:"is_closed"`
}

// TicketDetailDTO is a ticket with its comments, newest first.
type TicketDetailDTO struct {
	TicketDTO
	Comments []*commentdto.CommentDTO `json:"comments"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:           t.ID(),
		AssetID:      t.AssetID(),
		Title:        t.Title(),
		Creator:      t.Creator(),
		CreatorMail:  t.CreatorMail(),
		CreatorPhone: t.CreatorPhone(),
		Description:  t.Description(),
		Time:         biztime.NewNaiveTime(t.Time()),
		IsClosed:     t.IsClosed(),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}

func ToTicketDetailDTO(d *ticket.Detail) *TicketDetailDTO {
	if d == nil || d.Ticket == nil {
		return nil
	}
	return &TicketDetailDTO{
		TicketDTO: *ToTicketDTO(d.Ticket),
		Comments:  commentdto.ToCommentDTOList(d.Comments),
	}
}
