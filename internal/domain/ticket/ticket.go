// Package ticket holds tickets raised against assets and the comments
// replying to them.
package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/tinytickets/tinytickets/internal/shared/biztime"
)

type Ticket struct {
	id           int64
	assetID      int64
	title        string
	creator      string
	creatorMail  string
	creatorPhone string
	description  string
	time         time.Time
	isClosed     bool
}

// NewTicket creates a ticket that has not been stored yet. Free text is
// trimmed and a zero time is replaced with the current UTC time.
func NewTicket(
	assetID int64,
	title string,
	creator string,
	creatorMail string,
	creatorPhone string,
	description string,
	at time.Time,
	isClosed bool,
) (*Ticket, error) {
	if assetID <= 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if at.IsZero() {
		at = biztime.NowUTC()
	}

	return &Ticket{
		assetID:      assetID,
		title:        strings.TrimSpace(title),
		creator:      strings.TrimSpace(creator),
		creatorMail:  strings.TrimSpace(creatorMail),
		creatorPhone: strings.TrimSpace(creatorPhone),
		description:  strings.TrimSpace(description),
		time:         at.UTC(),
		isClosed:     isClosed,
	}, nil
}

// ReconstructTicket rebuilds a ticket loaded from storage.
func ReconstructTicket(
	id int64,
	assetID int64,
	title string,
	creator string,
	creatorMail string,
	creatorPhone string,
	description string,
	at time.Time,
	isClosed bool,
) (*Ticket, error) {
	if id <= 0 {
		return nil, fmt.Errorf("ticket ID must be positive")
	}

	return &Ticket{
		id:           id,
		assetID:      assetID,
		title:        title,
		creator:      creator,
		creatorMail:  creatorMail,
		creatorPhone: creatorPhone,
		description:  description,
		time:         at.UTC(),
		isClosed:     isClosed,
	}, nil
}

func (t *Ticket) ID() int64 {
	return t.id
}

func (t *Ticket) AssetID() int64 {
	return t.assetID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Creator() string {
	return t.creator
}

func (t *Ticket) CreatorMail() string {
	return t.creatorMail
}

func (t *Ticket) CreatorPhone() string {
	return t.creatorPhone
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Time() time.Time {
	return t.time
}

func (t *Ticket) IsClosed() bool {
	return t.isClosed
}

// SetID assigns the store generated id. It can only be set once.
func (t *Ticket) SetID(id int64) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id <= 0 {
		return fmt.Errorf("ticket ID must be positive")
	}
	t.id = id
	return nil
}

// ClosesFrom reports whether replacing previous with t closes an open ticket
// whose creator can be told about it.
func (t *Ticket) ClosesFrom(previous *Ticket) bool {
	return previous != nil && !previous.isClosed && t.isClosed && t.creatorMail != ""
}

// Detail is a ticket together with its comments, newest first.
type Detail struct {
	Ticket   *Ticket
	Comments []*Comment
}
