package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/business-review/go-api-server/internal/config"
	"github.com/changhyeonkim/business-review/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("database migration starting - all tables will be dropped and recreated!",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is not allowed in production, blocked to prevent data loss")
	}

	// Step 1: Drop tables in reverse dependency order (FK constraints)
	slog.Info("dropping existing tables...")

	tables := []interface{}{
		&model.Review{},
		&model.Business{},
		&model.Member{},
	}

	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			slog.Debug("failed to drop table", "table", fmt.Sprintf("%T", table), "error", err)
		} else {
			slog.Debug("table dropped", "table", fmt.Sprintf("%T", table))
		}
	}

	// Step 2: Create tables
	slog.Info("creating tables...")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	slog.Info("migration complete")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// Create in dependency order: independent tables first,
	// FK-referencing tables after.
	models := []interface{}{
		&model.Member{},
		&model.Business{},
		&model.Review{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
		slog.Debug("table created", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
