package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/business-review/go-api-server/internal/config"
	"github.com/changhyeonkim/business-review/go-api-server/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts the fixed demo members and businesses. This is a startup
// convenience for the demo, not a runtime contract; it is skipped when
// members already exist so restarts stay idempotent.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsSeed {
		slog.Info("database seed disabled", "seed", false, "env", cfg.App.Env)
		return nil
	}

	var count int64
	if err := db.Model(&model.Member{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping", "members", count)
		return nil
	}

	members := map[string]string{
		"moe":   "moe123",
		"lucy":  "lucy123",
		"ethyl": "ethyl123",
		"curly": "curly123",
	}

	businesses := []*model.Business{
		model.NewBusiness("Apple", "Apple is a technology company", "San Francisco"),
		model.NewBusiness("Samsung", "Samsung is a technology company", "Seoul"),
		model.NewBusiness("Google", "Google is a technology company", "Mountain View"),
		model.NewBusiness("Facebook", "Facebook is a technology company", "Menlo Park"),
		model.NewBusiness("Tesla", "Tesla is a technology company", "Palo Alto"),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for username, password := range members {
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", username, err)
			}
			if err := tx.Create(model.NewMember(username, string(hashed))).Error; err != nil {
				return fmt.Errorf("failed to seed member %s: %w", username, err)
			}
		}

		for _, business := range businesses {
			if err := tx.Create(business).Error; err != nil {
				return fmt.Errorf("failed to seed business %s: %w", business.Name, err)
			}
		}

		slog.Info("database seeded", "members", len(members), "businesses", len(businesses))
		return nil
	})
}
