package notification

import "time"

// AssetData is the template-facing copy of an asset.
type AssetData struct {
	ID          int64
	Title       string
	Description string
}

// TicketData is the template-facing copy of a ticket.
type TicketData struct {
	ID           int64
	AssetID      int64
	Title        string
	Creator      string
	CreatorMail  string
	CreatorPhone string
	Description  string
	Time         time.Time
	IsClosed     bool
}

func (t TicketData) Timestamp() time.Time {
	return t.Time
}

// CommentData is the template-facing copy of a comment.
type CommentData struct {
	ID       int64
	TicketID int64
	Time     time.Time
	Creator  string
	Content  string
}

func (c CommentData) Timestamp() time.Time {
	return c.Time
}

// TicketView feeds new_ticket (with Asset) and closed_ticket (with
// Comments).
type TicketView struct {
	Ticket   TicketData
	Asset    *AssetData
	Comments []CommentData
}

func (v TicketView) Timestamp() time.Time {
	return v.Ticket.Time
}

// CommentView feeds new_comment.
type CommentView struct {
	Comment CommentData
	Ticket  *TicketData
}

func (v CommentView) Timestamp() time.Time {
	return v.Comment.Time
}

// OpenTicketsView feeds the open_tickets digest.
type OpenTicketsView struct {
	Tickets []TicketData
}

// ExportEntry is one ticket of the export document. Asset is nil for
// tickets whose asset was deleted.
type ExportEntry struct {
	Ticket   TicketData
	Asset    *AssetData
	Comments []CommentData
}

func (e ExportEntry) Timestamp() time.Time {
	return e.Ticket.Time
}

// ExportView feeds the export document.
type ExportView struct {
	Title   string
	Entries []ExportEntry
}
