package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowme_backend/internal/models"
)

func applicationFixture(t *testing.T) (repo ApplicationRepository, studentProfileID, opportunityID string) {
	t.Helper()
	db := setupTestDB(t)
	repo = NewApplicationRepository(db)

	student := createTestUser(t, db, "student@example.com", models.UserRoleStudent)
	studentProfile := createTestStudentProfile(t, db, student.ID)

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	businessProfile := createTestBusinessProfile(t, db, owner.ID)
	opportunity := createTestOpportunity(t, db, businessProfile.ID, nil)

	return repo, studentProfile.ID, opportunity.ID
}

func TestApplicationRepository_DuplicatePairRejected(t *testing.T) {
	repo, studentProfileID, opportunityID := applicationFixture(t)
	ctx := testContext()

	first := &models.Application{
		StudentProfileID: studentProfileID,
		OpportunityID:    opportunityID,
		Status:           models.ApplicationStatusPending,
		CoverLetter:      "I would really like to shadow your team",
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Application{
		StudentProfileID: studentProfileID,
		OpportunityID:    opportunityID,
		Status:           models.ApplicationStatusPending,
		CoverLetter:      "Trying to apply a second time",
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestApplicationRepository_CreateSetsAppliedAt(t *testing.T) {
	repo, studentProfileID, opportunityID := applicationFixture(t)
	ctx := testContext()

	application := &models.Application{
		StudentProfileID: studentProfileID,
		OpportunityID:    opportunityID,
		Status:           models.ApplicationStatusPending,
		CoverLetter:      "I would really like to shadow your team",
	}
	require.NoError(t, repo.Create(ctx, application))

	stored, err := repo.FindByID(ctx, application.ID)
	require.NoError(t, err)
	assert.False(t, stored.AppliedAt.IsZero())
	assert.Nil(t, stored.RespondedAt)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
}

func TestApplicationRepository_UpdateStatusStampsRespondedAt(t *testing.T) {
	repo, studentProfileID, opportunityID := applicationFixture(t)
	ctx := testContext()

	application := &models.Application{
		StudentProfileID: studentProfileID,
		OpportunityID:    opportunityID,
		Status:           models.ApplicationStatusPending,
		CoverLetter:      "I would really like to shadow your team",
	}
	require.NoError(t, repo.Create(ctx, application))

	require.NoError(t, repo.UpdateStatus(ctx, application.ID, models.ApplicationStatusAccepted, ""))

	accepted, err := repo.FindByID(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)
	assert.False(t, accepted.RespondedAt.Before(accepted.AppliedAt))
	assert.False(t, accepted.RespondedAt.After(time.Now()))

	firstResponse := *accepted.RespondedAt
	time.Sleep(10 * time.Millisecond)

	// A later decision overwrites the earlier one and re-stamps the time.
	require.NoError(t, repo.UpdateStatus(ctx, application.ID, models.ApplicationStatusRejected, "changed our mind"))

	rejected, err := repo.FindByID(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RespondedAt)
	assert.True(t, rejected.RespondedAt.After(firstResponse))
	assert.Equal(t, "changed our mind", rejected.Notes)
}

func TestApplicationRepository_UpdateStatusMissingRow(t *testing.T) {
	repo, _, _ := applicationFixture(t)
	ctx := testContext()

	err := repo.UpdateStatus(ctx, "00000000-0000-0000-0000-000000000000", models.ApplicationStatusAccepted, "")
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationRepository_ListByStudentNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := testContext()

	student := createTestUser(t, db, "student@example.com", models.UserRoleStudent)
	studentProfile := createTestStudentProfile(t, db, student.ID)
	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	businessProfile := createTestBusinessProfile(t, db, owner.ID)

	early := time.Now().Add(-time.Hour)
	late := time.Now()

	for i, appliedAt := range []time.Time{early, late} {
		opportunity := createTestOpportunity(t, db, businessProfile.ID, nil)
		application := &models.Application{
			StudentProfileID: studentProfile.ID,
			OpportunityID:    opportunity.ID,
			Status:           models.ApplicationStatusPending,
			CoverLetter:      "I would really like to shadow your team",
			AppliedAt:        appliedAt,
		}
		require.NoError(t, repo.Create(ctx, application), "application %d", i)
	}

	listed, err := repo.ListByStudent(ctx, studentProfile.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.True(t, listed[0].AppliedAt.After(listed[1].AppliedAt))
	require.NotNil(t, listed[0].Opportunity)
}

func TestApplicationRepository_ListByOpportunityNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	businessProfile := createTestBusinessProfile(t, db, owner.ID)
	opportunity := createTestOpportunity(t, db, businessProfile.ID, nil)

	early := time.Now().Add(-time.Hour)
	late := time.Now()

	for i, appliedAt := range []time.Time{early, late} {
		student := createTestUser(t, db, fmt.Sprintf("student%d@example.com", i), models.UserRoleStudent)
		studentProfile := createTestStudentProfile(t, db, student.ID)
		application := &models.Application{
			StudentProfileID: studentProfile.ID,
			OpportunityID:    opportunity.ID,
			Status:           models.ApplicationStatusPending,
			CoverLetter:      "I would really like to shadow your team",
			AppliedAt:        appliedAt,
		}
		require.NoError(t, repo.Create(ctx, application))
	}

	listed, err := repo.ListByOpportunity(ctx, opportunity.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.True(t, listed[0].AppliedAt.After(listed[1].AppliedAt))
	require.NotNil(t, listed[0].StudentProfile)
}
