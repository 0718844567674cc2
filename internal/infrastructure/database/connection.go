// Package database owns the SQLite connection pool shared by every
// repository.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tinytickets/tinytickets/internal/shared/config"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

const (
	defaultMaxOpenConns = 8
	slowQueryThreshold  = 200 * time.Millisecond
)

var (
	mu     sync.RWMutex
	shared *gorm.DB
)

// Open connects to the database file named by cfg. The parent directory is
// created when missing.
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if err := ensureDir(cfg.Path); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.New(queryWriter{}, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Path, err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	open, idle := poolSize(cfg)
	sqlDB.SetMaxOpenConns(open)
	sqlDB.SetMaxIdleConns(idle)
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Path, err)
	}
	return gdb, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory %s: %w", dir, err)
	}
	return nil
}

// poolSize keeps idle connections within the open limit.
func poolSize(cfg *config.DatabaseConfig) (open, idle int) {
	open = cfg.MaxOpenConns
	if open <= 0 {
		open = defaultMaxOpenConns
	}
	idle = cfg.MaxIdleConns
	if idle <= 0 || idle > open {
		idle = open
	}
	return open, idle
}

// Init opens the process-wide pool used by the CLI commands.
func Init(cfg *config.DatabaseConfig) error {
	gdb, err := Open(cfg)
	if err != nil {
		return err
	}

	mu.Lock()
	shared = gdb
	mu.Unlock()

	logger.Info("database opened", "path", cfg.Path)
	return nil
}

func Get() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return shared
}

// Close releases the process-wide pool. Calling it twice is harmless.
func Close() error {
	mu.Lock()
	gdb := shared
	shared = nil
	mu.Unlock()

	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	logger.Info("database closed")
	return nil
}

// queryWriter forwards gorm's formatted lines to the application logger.
type queryWriter struct{}

func (queryWriter) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	lower := strings.ToLower(line)

	switch {
	case strings.Contains(lower, "sqlite_master"):
		// schema lookups issued by the migrator
	case strings.Contains(lower, "slow sql"):
		logger.Warn("slow query", "details", line)
	case strings.Contains(lower, "error"):
		logger.Error("query failed", "details", line)
	default:
		logger.Debug("query", "details", line)
	}
}
