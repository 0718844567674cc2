package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytickets/tinytickets/internal/shared/biztime"
)

type Comment struct {
	id       int64
	ticketID int64
	time     time.Time
	creator  string
	content  string
}

// NewComment creates a comment that has not been stored yet. Free text is
// trimmed and a zero time is replaced with the current UTC time.
func NewComment(ticketID int64, at time.Time, creator, content string) (*Comment, error) {
	if ticketID <= 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if at.IsZero() {
		at = biztime.NowUTC()
	}

	return &Comment{
		ticketID: ticketID,
		time:     at.UTC(),
		creator:  strings.TrimSpace(creator),
		content:  strings.TrimSpace(content),
	}, nil
}

// ReconstructComment rebuilds a comment loaded from storage.
func ReconstructComment(id, ticketID int64, at time.Time, creator, content string) (*Comment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("comment ID must be positive")
	}

	return &Comment{
		id:       id,
		ticketID: ticketID,
		time:     at.UTC(),
		creator:  creator,
		content:  content,
	}, nil
}

func (c *Comment) ID() int64 {
	return c.id
}

func (c *Comment) TicketID() int64 {
	return c.ticketID
}

func (c *Comment) Time() time.Time {
	return c.time
}

func (c *Comment) Creator() string {
	return c.creator
}

func (c *Comment) Content() string {
	return c.content
}

// SetID assigns the store generated id. It can only be set once.
func (c *Comment) SetID(id int64) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id <= 0 {
		return fmt.Errorf("comment ID must be positive")
	}
	c.id = id
	return nil
}
