package notification

import (
	"github.com/tinytickets/tinytickets/internal/domain/asset"
	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/domain/ticket"
	"github.com/tinytickets/tinytickets/internal/shared/mapper"
)

func AssetData(a *asset.Asset) *notif.AssetData {
	if a == nil {
		return nil
	}
	return &notif.AssetData{
		ID:          a.ID(),
		Title:       a.Title(),
		Description: a.Description(),
	}
}

func TicketData(t *ticket.Ticket) notif.TicketData {
	return notif.TicketData{
		ID:           t.ID(),
		AssetID:      t.AssetID(),
		Title:        t.Title(),
		Creator:      t.Creator(),
		CreatorMail:  t.CreatorMail(),
		CreatorPhone: t.CreatorPhone(),
		Description:  t.Description(),
		Time:         t.Time(),
		IsClosed:     t.IsClosed(),
	}
}

func TicketsData(tickets []*ticket.Ticket) []notif.TicketData {
	return mapper.MapSlice(tickets, TicketData)
}

func CommentData(c *ticket.Comment) notif.CommentData {
	return notif.CommentData{
		ID:       c.ID(),
		TicketID: c.TicketID(),
		Time:     c.Time(),
		Creator:  c.Creator(),
		Content:  c.Content(),
	}
}

func CommentsData(comments []*ticket.Comment) []notif.CommentData {
	return mapper.MapSlice(comments, CommentData)
}

// NewTicketView builds the new_ticket payload.
func NewTicketView(t *ticket.Ticket, a *asset.Asset) notif.TicketView {
	return notif.TicketView{
		Ticket:   TicketData(t),
		Asset:    AssetData(a),
		Comments: []notif.CommentData{},
	}
}

// ClosedTicketView builds the closed_ticket payload.
func ClosedTicketView(detail *ticket.Detail) notif.TicketView {
	return notif.TicketView{
		Ticket:   TicketData(detail.Ticket),
		Comments: CommentsData(detail.Comments),
	}
}

// NewCommentView builds the new_comment payload.
func NewCommentView(c *ticket.Comment, t *ticket.Ticket) notif.CommentView {
	view := notif.CommentView{Comment: CommentData(c)}
	if t != nil {
		td := TicketData(t)
		view.Ticket = &td
	}
	return view
}

func OpenTicketsView(tickets []*ticket.Ticket) notif.OpenTicketsView {
	return notif.OpenTicketsView{Tickets: TicketsData(tickets)}
}
