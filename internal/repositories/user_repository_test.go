package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowme_backend/internal/models"
)

func TestUserRepository_CleanExpiredRefreshTokens(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := testContext()

	user := createTestUser(t, db, "tokens@example.com", models.UserRoleStudent)

	expired := &models.RefreshToken{
		UserID:    user.ID,
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, expired))

	live := &models.RefreshToken{
		UserID:    user.ID,
		Token:     "live-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, live))

	dropped, err := repo.CleanExpiredRefreshTokens(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), dropped)

	_, err = repo.FindRefreshToken(ctx, "expired-token")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)

	kept, err := repo.FindRefreshToken(ctx, "live-token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, kept.UserID)

	// A second sweep has nothing left to drop.
	dropped, err = repo.CleanExpiredRefreshTokens(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, dropped)
}
