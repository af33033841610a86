package user

import (
	"context"
	"restaurant-backend/entities"
	"restaurant-backend/pkg/session"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash stored in users.password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// EnsureUser creates the account if no user with that email exists yet, or
// resets role, password and activation if it does. Returns true when a row
// was created.
func EnsureUser(ctx context.Context, repo UserRepository, email, password, role string) (bool, error) {
	if !session.IsKnownRole(role) {
		return false, session.ErrUnknownRole
	}
	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	existing, err := repo.GetUserByEmail(ctx, email)
	if err != nil && !IsNotFound(err) {
		return false, err
	}
	if existing != nil {
		existing.Password = hash
		existing.Role = role
		existing.IsActive = true
		return false, repo.UpdateUser(ctx, existing)
	}

	return true, repo.CreateUser(ctx, &entities.User{
		ID:       uuid.New(),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: hash,
		Role:     role,
		IsActive: true,
	})
}
