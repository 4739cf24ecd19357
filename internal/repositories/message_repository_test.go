package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowme_backend/internal/models"
)

func TestMessageRepository_ListOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	messageRepo := NewMessageRepository(db)
	applicationRepo := NewApplicationRepository(db)
	ctx := testContext()

	student := createTestUser(t, db, "student@example.com", models.UserRoleStudent)
	studentProfile := createTestStudentProfile(t, db, student.ID)
	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	businessProfile := createTestBusinessProfile(t, db, owner.ID)
	opportunity := createTestOpportunity(t, db, businessProfile.ID, nil)

	application := &models.Application{
		StudentProfileID: studentProfile.ID,
		OpportunityID:    opportunity.ID,
		Status:           models.ApplicationStatusAccepted,
		CoverLetter:      "I would really like to shadow your team",
	}
	require.NoError(t, applicationRepo.Create(ctx, application))

	base := time.Now().Add(-time.Hour)
	contents := []string{"first", "second", "third"}
	senders := []string{student.ID, owner.ID, student.ID}
	for i, content := range contents {
		sentAt := base.Add(time.Duration(i) * time.Minute)
		message := &models.Message{
			ApplicationID: application.ID,
			SenderID:      senders[i],
			Content:       content,
			SentAt:        sentAt,
		}
		require.NoError(t, messageRepo.Create(ctx, message))
	}

	listed, err := messageRepo.ListByApplication(ctx, application.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, content := range contents {
		assert.Equal(t, content, listed[i].Content)
	}
	assert.True(t, listed[0].SentAt.Before(listed[2].SentAt))

	// read_at is never set anywhere in the flow.
	for _, m := range listed {
		assert.Nil(t, m.ReadAt)
	}
}

func TestMessageRepository_EmptyThread(t *testing.T) {
	db := setupTestDB(t)
	messageRepo := NewMessageRepository(db)
	ctx := testContext()

	listed, err := messageRepo.ListByApplication(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
