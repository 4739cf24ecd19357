package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowme_backend/internal/config"
	"shadowme_backend/internal/models"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	cfg.JWT.RefreshTTL = 24
	config.AppConfig = cfg
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestGenerateAndParseToken(t *testing.T) {
	tokenStr, err := GenerateToken("user-123", models.UserRoleBusiness)
	require.NoError(t, err)

	claims, err := ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleBusiness, claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "rotated-secret"
	defer func() { config.AppConfig.JWT.Secret = "unit-test-secret" }()

	_, err = ParseToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewRefreshToken(t *testing.T) {
	token, expiresAt := NewRefreshToken()
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now().Add(23*time.Hour)))

	other, _ := NewRefreshToken()
	assert.NotEqual(t, token, other)
}
