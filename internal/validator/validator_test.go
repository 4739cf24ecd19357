package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shadowme_backend/internal/models"
)

type sampleRequest struct {
	Email       string                   `json:"email" validate:"required,email"`
	Role        models.UserRole          `json:"role" validate:"required,is-user-role"`
	Status      models.ApplicationStatus `json:"status" validate:"omitempty,is-application-status"`
	CoverLetter string                   `json:"cover_letter" validate:"omitempty,min=10"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Email:       "student@example.com",
		Role:        models.UserRoleStudent,
		Status:      models.ApplicationStatusAccepted,
		CoverLetter: "exactly 10",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Email: "not-an-email",
		Role:  models.UserRoleStudent,
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_UserRoleRule(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Email: "student@example.com",
		Role:  models.UserRole("admin"),
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be 'student' or 'business'", vErr.Errors["role"])
}

func TestValidate_ApplicationStatusRule(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Email:  "student@example.com",
		Role:   models.UserRoleBusiness,
		Status: models.ApplicationStatus("archived"),
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "status")
}

func TestValidate_MinLength(t *testing.T) {
	v := New()

	err := v.Validate(sampleRequest{
		Email:       "student@example.com",
		Role:        models.UserRoleStudent,
		CoverLetter: "too short", // 9 characters
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "cover_letter")
}
