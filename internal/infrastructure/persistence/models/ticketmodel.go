package models

import (
	"time"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
)

type TicketModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	AssetID      int64     `gorm:"not null;index"`
	Title        string    `gorm:"type:text;not null;default:''"`
	Creator      string    `gorm:"type:text;not null;default:''"`
	CreatorMail  string    `gorm:"type:text;not null;default:''"`
	CreatorPhone string    `gorm:"type:text;not null;default:''"`
	Description  string    `gorm:"type:text;not null;default:''"`
	Time         time.Time `gorm:"type:datetime;not null;index"`
	IsClosed     bool      `gorm:"not null;default:false;index"`

	// No foreign key constraints or associations. Parent existence is checked
	// by the application at creation time only.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	TicketID int64     `gorm:"not null;index"`
	Time     time.Time `gorm:"type:datetime;not null"`
	Creator  string    `gorm:"type:text;not null;default:''"`
	Content  string    `gorm:"type:text;not null;default:''"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}
