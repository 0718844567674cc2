package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Mode      string `mapstructure:"mode"`
	DebugMode bool   `mapstructure:"debug_mode"`
	WebDir    string `mapstructure:"web_dir"`
	Timezone  string `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type AppConfig struct {
	Title string `mapstructure:"title"`
}

type DatabaseConfig struct {
	Path                  string `mapstructure:"path"`
	MaxIdleConns          int    `mapstructure:"max_idle_conns"`
	MaxOpenConns          int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime       int    `mapstructure:"conn_max_lifetime"`
	BusyTimeoutMillis     int    `mapstructure:"busy_timeout_millis"`
	AcquireTimeoutSeconds int    `mapstructure:"acquire_timeout_seconds"`
}

// GetDSN builds the sqlite DSN for the configured database file.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=off",
		d.Path, d.BusyTimeoutMillis)
}

func (d *DatabaseConfig) AcquireTimeout() time.Duration {
	if d.AcquireTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(d.AcquireTimeoutSeconds) * time.Second
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AuthConfig holds the raw (un-prefixed) role secrets. Empty values are
// replaced by generated secrets at startup.
type AuthConfig struct {
	AdminToken string `mapstructure:"admin_token"`
	UserToken  string `mapstructure:"user_token"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	TestMode     bool   `mapstructure:"test_mode"`
}

type NotificationConfig struct {
	TicketMailTo  string `mapstructure:"ticket_mail_to"`
	CommentMailTo string `mapstructure:"comment_mail_to"`
	TemplatesDir  string `mapstructure:"templates_dir"`
}

type StorageConfig struct {
	PhotosDir      string `mapstructure:"photos_dir"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	MaxDimension   int    `mapstructure:"max_dimension"`
	JPEGQuality    int    `mapstructure:"jpeg_quality"`
}
