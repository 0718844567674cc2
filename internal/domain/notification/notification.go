// Package notification describes the mails sent on ticket and comment
// lifecycle events: which template renders them and the data they carry.
package notification

import (
	"context"
	"time"
)

// Template names. Each name has a subject and a body template.
const (
	TemplateNewTicket    = "new_ticket"
	TemplateNewComment   = "new_comment"
	TemplateClosedTicket = "closed_ticket"
	TemplateOpenTickets  = "open_tickets"
	TemplateExport       = "export"
)

// TemplateNames lists every template the renderer must provide.
var TemplateNames = []string{
	TemplateNewTicket,
	TemplateNewComment,
	TemplateClosedTicket,
	TemplateOpenTickets,
	TemplateExport,
}

// Mailer delivers a rendered mail. to may hold several comma separated
// addresses.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Renderer turns a view into a subject line and an HTML body.
type Renderer interface {
	Render(name string, view any) (subject string, body string, err error)
}

// Timestamped is implemented by views that carry their own point in time.
// The formattime template helper relies on it.
type Timestamped interface {
	Timestamp() time.Time
}
