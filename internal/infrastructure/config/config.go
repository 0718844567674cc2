package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/tinytickets/tinytickets/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	App          sharedConfig.AppConfig          `mapstructure:"app"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Notification sharedConfig.NotificationConfig `mapstructure:"notification"`
	Storage      sharedConfig.StorageConfig      `mapstructure:"storage"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// legacyEnv maps config keys to the bare environment variable names the
// deployment scripts already export.
var legacyEnv = map[string]string{
	"auth.admin_token":             "ADMIN_TOKEN",
	"auth.user_token":              "USER_TOKEN",
	"notification.ticket_mail_to":  "TICKET_MAIL_TO",
	"notification.comment_mail_to": "COMMENT_MAIL_TO",
	"email.smtp_host":              "MAIL_SERVER",
	"email.smtp_port":              "MAIL_PORT",
	"email.smtp_user":              "MAIL_USER",
	"email.smtp_password":          "MAIL_PASSWORD",
	"email.from_address":           "MAIL_FROM",
	"email.test_mode":              "TEST_MODE",
	"app.title":                    "APP_TITLE",
	"server.debug_mode":            "DEBUG_MODE",
}

// Load loads configuration from an optional file and environment variables.
// configPath may be empty, in which case ./configs/config.yaml is tried.
func Load(env string, configPath ...string) (*Config, error) {
	v := viper.New()

	if len(configPath) > 0 && configPath[0] != "" {
		v.SetConfigFile(configPath[0])
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
	}

	v.SetEnvPrefix("TINYTICKETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envName := range legacyEnv {
		if err := v.BindEnv(key, envName, "TINYTICKETS_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_"))); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", envName, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.debug_mode", false)
	v.SetDefault("server.web_dir", "web")
	v.SetDefault("server.timezone", "UTC")

	v.SetDefault("app.title", "Tiny Tickets")

	v.SetDefault("database.path", "db/db.sqlite")
	v.SetDefault("database.max_idle_conns", 8)
	v.SetDefault("database.max_open_conns", 8)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.busy_timeout_millis", 5000)
	v.SetDefault("database.acquire_timeout_seconds", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.admin_token", "")
	v.SetDefault("auth.user_token", "")

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "")
	v.SetDefault("email.test_mode", false)

	v.SetDefault("notification.ticket_mail_to", "")
	v.SetDefault("notification.comment_mail_to", "")
	v.SetDefault("notification.templates_dir", "templates")

	v.SetDefault("storage.photos_dir", "data/tickets/photos")
	v.SetDefault("storage.max_upload_bytes", 10<<20)
	v.SetDefault("storage.max_dimension", 1280)
	v.SetDefault("storage.jpeg_quality", 90)
}
