package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tinytickets/tinytickets/internal/infrastructure/persistence/models"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
)

// AutoMigrateModels lists every persisted model.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AssetModel{},
		&models.TicketModel{},
		&models.CommentModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs. Meant
// for local development only; it never drops columns.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.gorm-auto"),
	}
}

func (s *GormAutoMigrateStrategy) Name() string {
	return "gorm_auto_migrate"
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	list := AutoMigrateModels()
	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	s.logger.Infow("auto migration completed", "models_count", len(list))
	return nil
}
