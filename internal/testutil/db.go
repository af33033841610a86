// Package testutil holds fixtures shared by repository, service and handler
// tests.
package testutil

import (
	"context"
	"restaurant-backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with every table migrated.
// A single connection keeps the in-memory database alive for the whole test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.MenuItem{},
		&entities.FeaturedItem{},
		&entities.Reservation{},
	))
	return db
}

func SeedMenuItem(t testing.TB, db *gorm.DB, name, category string, price float64) *entities.MenuItem {
	t.Helper()
	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Description: name + " description",
		Category:    category,
	}
	require.NoError(t, db.WithContext(context.Background()).Create(item).Error)
	return item
}

// SeedUser stores an active user whose password is hashed with the minimum
// bcrypt cost.
func SeedUser(t testing.TB, db *gorm.DB, email, password, role string) *entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
