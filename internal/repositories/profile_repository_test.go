package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowme_backend/internal/models"
)

func TestProfileRepository_StudentProfileUniquePerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := testContext()

	user := createTestUser(t, db, "student@example.com", models.UserRoleStudent)

	first := &models.StudentProfile{UserID: user.ID, EducationLevel: "university"}
	require.NoError(t, repo.CreateStudentProfile(ctx, first))

	second := &models.StudentProfile{UserID: user.ID, EducationLevel: "high_school"}
	err := repo.CreateStudentProfile(ctx, second)
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProfileRepository_FindStudentProfileByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := testContext()

	user := createTestUser(t, db, "student@example.com", models.UserRoleStudent)
	created := createTestStudentProfile(t, db, user.ID)

	found, err := repo.FindStudentProfileByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindStudentProfileByUserID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestProfileRepository_UpdateStudentProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := testContext()

	user := createTestUser(t, db, "student@example.com", models.UserRoleStudent)
	profile := createTestStudentProfile(t, db, user.ID)

	profile.Bio = "I want to see how engineers actually work"
	profile.CompletedOnboarding = true
	require.NoError(t, repo.UpdateStudentProfile(ctx, profile))

	reloaded, err := repo.FindStudentProfileByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "I want to see how engineers actually work", reloaded.Bio)
	assert.True(t, reloaded.CompletedOnboarding)
}

func TestProfileRepository_BusinessProfileUniquePerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := testContext()

	user := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)

	first := &models.BusinessProfile{UserID: user.ID, CompanyName: "Acme GmbH"}
	require.NoError(t, repo.CreateBusinessProfile(ctx, first))

	second := &models.BusinessProfile{UserID: user.ID, CompanyName: "Acme Two"}
	err := repo.CreateBusinessProfile(ctx, second)
	assert.ErrorIs(t, err, ErrProfileAlreadyExists)
}

func TestProfileRepository_UpdateMissingProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := testContext()

	ghost := &models.StudentProfile{
		BaseModel: models.BaseModel{ID: "00000000-0000-0000-0000-000000000000"},
		UserID:    "00000000-0000-0000-0000-000000000001",
	}
	err := repo.UpdateStudentProfile(ctx, ghost)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
