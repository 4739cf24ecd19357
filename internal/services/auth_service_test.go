package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shadowme_backend/internal/models"
	"shadowme_backend/internal/services/dto"
	"shadowme_backend/pkg/apperrors"
)

// Both checks fire before any repository call, so nil repos are fine here.
func TestAuthService_RegisterRejectsWeakPassword(t *testing.T) {
	svc := NewAuthService(nil, nil)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "weak@example.com",
		Password:  "short",
		Role:      models.UserRoleStudent,
		FirstName: "Test",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(nil, nil)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:     "role@example.com",
		Password:  "long enough password",
		Role:      models.UserRole("admin"),
		FirstName: "Test",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}
