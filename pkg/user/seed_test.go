package user

import (
	"context"
	"restaurant-backend/entities"
	"restaurant-backend/internal/testutil"
	"restaurant-backend/pkg/session"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureUserCreatesThenResets(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := EnsureUser(ctx, repo, " Admin@Example.com ", "first", "admin")
	require.NoError(t, err)
	assert.True(t, created)

	u, err := repo.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", u.Email)
	assert.Equal(t, "admin", u.Role)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("first")))

	require.NoError(t, db.Model(u).Update("is_active", false).Error)

	created, err = EnsureUser(ctx, repo, "ADMIN@example.com", "second", "manager")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.User{}))

	u, err = repo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "manager", u.Role)
	assert.True(t, u.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("second")))
}

func TestEnsureUserRejectsUnknownRole(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := EnsureUser(context.Background(), NewUserRepository(db), "x@example.com", "pw", "owner")
	assert.ErrorIs(t, err, session.ErrUnknownRole)
	assert.Zero(t, testutil.Count(t, db, &entities.User{}))
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := NewUserRepository(db).GetUserByEmail(context.Background(), "ghost@example.com")
	assert.True(t, IsNotFound(err))
}
