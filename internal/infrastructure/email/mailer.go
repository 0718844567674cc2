package email

import (
	"context"

	"github.com/tinytickets/tinytickets/internal/domain/notification"
	"github.com/tinytickets/tinytickets/internal/shared/config"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

// NewMailer picks the delivery backend: the mock in test mode, SMTP when a
// relay host is configured, and otherwise a mailer that refuses every send.
func NewMailer(cfg config.EmailConfig, log logger.Interface) notification.Mailer {
	if cfg.TestMode {
		log.Infow("test mode enabled, mails are recorded instead of sent")
		return NewMockMailer()
	}

	if cfg.SMTPHost == "" {
		log.Warnw("email service not configured, smtp_host is empty")
		return &unconfiguredMailer{logger: log}
	}

	log.Infow("email service initialized",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"from", cfg.FromAddress,
	)

	return NewSMTPMailer(SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
	})
}

type unconfiguredMailer struct {
	logger logger.Interface
}

func (u *unconfiguredMailer) Send(_ context.Context, to, subject, _ string) error {
	u.logger.Warnw("email service not configured, cannot send mail",
		"to", utils.MaskRecipients(to),
		"subject", subject)
	return ErrEmailServiceNotConfigured
}
