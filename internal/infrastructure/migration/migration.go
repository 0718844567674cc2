package migration

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// Strategy names accepted by --migration-strategy.
const (
	StrategyScripts = "scripts"
	StrategyAuto    = "auto"
)

var strategies = map[string]func(logger.Interface) Strategy{
	StrategyScripts: func(l logger.Interface) Strategy { return NewGolangMigrateStrategy(l) },
	StrategyAuto:    func(l logger.Interface) Strategy { return NewGormAutoMigrateStrategy(l) },
}

// Manager brings the schema up to date at startup.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks a strategy by name. Unknown or empty names fall back to
// the embedded scripts.
func NewManager(name string, log logger.Interface) *Manager {
	build, ok := strategies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		build = strategies[StrategyScripts]
	}
	return NewManagerWithStrategy(build(log), log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration"),
	}
}

func (m *Manager) Strategy() Strategy {
	return m.strategy
}

func (m *Manager) Migrate(db *gorm.DB) error {
	name := m.strategy.Name()
	started := time.Now()

	if err := m.strategy.Migrate(db); err != nil {
		return fmt.Errorf("migrate with %s: %w", name, err)
	}

	m.logger.Infow("schema up to date", "strategy", name, "took", time.Since(started))
	return nil
}
