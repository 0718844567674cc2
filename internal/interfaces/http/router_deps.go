package http

import (
	"gorm.io/gorm"

	notif "github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/infrastructure/auth"
	"github.com/tinytickets/tinytickets/internal/infrastructure/config"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// RouterDeps carries what the router needs from process startup.
type RouterDeps struct {
	DB      *gorm.DB
	Config  *config.Config
	Secrets auth.Secrets
	// Mailer overrides the mailer derived from Config.Email when set.
	Mailer notif.Mailer
	Logger logger.Interface
}
