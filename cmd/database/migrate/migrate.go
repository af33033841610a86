package migration

import (
	"context"
	"errors"
	"fmt"
	"restaurant-backend/entities"
	"restaurant-backend/internal/utils"
	"restaurant-backend/pkg/session"
	"restaurant-backend/pkg/user"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

var ErrAdminNotConfigured = errors.New("admin email and password must be set")

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"menu item", &entities.MenuItem{}},
		{"featured item", &entities.FeaturedItem{}},
		{"reservation", &entities.Reservation{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}

// SeedAdmin creates or resets the administrator named in ADMIN_EMAIL.
func SeedAdmin(ctx context.Context, db *gorm.DB) error {
	return SeedUser(ctx, db, utils.GetConfig("ADMIN_EMAIL"), utils.GetConfig("ADMIN_PASSWORD"), string(session.RoleAdmin))
}

func SeedUser(ctx context.Context, db *gorm.DB, email, password, role string) error {
	if email == "" || password == "" {
		return ErrAdminNotConfigured
	}

	created, err := user.EnsureUser(ctx, user.NewUserRepository(db), email, password, role)
	if err != nil {
		return fmt.Errorf("seeding %s: %w", role, err)
	}
	if created {
		log.Infow("user created", "email", email, "role", role)
	} else {
		log.Infow("user updated", "email", email, "role", role)
	}
	return nil
}
