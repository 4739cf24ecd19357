package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowme_backend/internal/models"
)

func TestOpportunityRepository_ListActiveExcludesOtherStatuses(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)

	active := createTestOpportunity(t, db, profile.ID, nil)
	createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Title = "Closed one"
		o.Status = models.OpportunityStatusClosed
	})
	createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Title = "Draft one"
		o.Status = models.OpportunityStatusDraft
	})

	listed, err := repo.ListActive(ctx, OpportunityFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, active.ID, listed[0].ID)
}

func TestOpportunityRepository_ListActiveNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)

	older := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Title = "Older posting"
		o.CreatedAt = time.Now().Add(-2 * time.Hour)
	})
	newer := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Title = "Newer posting"
		o.CreatedAt = time.Now().Add(-time.Hour)
	})

	listed, err := repo.ListActive(ctx, OpportunityFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, newer.ID, listed[0].ID)
	assert.Equal(t, older.ID, listed[1].ID)
}

func TestOpportunityRepository_ListActiveFiltersAreConjunctive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)

	match := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Industry = "healthcare"
		o.Location = "Hamburg"
		o.IsRemote = false
	})
	createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Industry = "healthcare"
		o.Location = "Berlin"
	})
	createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Industry = "engineering"
		o.Location = "Hamburg"
	})

	isRemote := false
	listed, err := repo.ListActive(ctx, OpportunityFilter{
		Industry: "healthcare",
		Location: "Hamburg",
		IsRemote: &isRemote,
	})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, match.ID, listed[0].ID)
}

func TestOpportunityRepository_IncrementApplicantsGuardsCapacity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)
	opportunity := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.MaxApplicants = 2
	})

	require.NoError(t, repo.IncrementApplicants(ctx, opportunity.ID))
	require.NoError(t, repo.IncrementApplicants(ctx, opportunity.ID))

	err := repo.IncrementApplicants(ctx, opportunity.ID)
	assert.ErrorIs(t, err, ErrOpportunityFull)

	reloaded, err := repo.FindByID(ctx, opportunity.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.CurrentApplicants)
}

func TestOpportunityRepository_IncrementApplicantsRejectsInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)
	opportunity := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.Status = models.OpportunityStatusClosed
	})

	err := repo.IncrementApplicants(ctx, opportunity.ID)
	assert.ErrorIs(t, err, ErrOpportunityFull)
}

func TestOpportunityRepository_DecrementApplicantsStopsAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)
	opportunity := createTestOpportunity(t, db, profile.ID, nil)

	require.NoError(t, repo.IncrementApplicants(ctx, opportunity.ID))
	require.NoError(t, repo.DecrementApplicants(ctx, opportunity.ID))
	require.NoError(t, repo.DecrementApplicants(ctx, opportunity.ID))

	reloaded, err := repo.FindByID(ctx, opportunity.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.CurrentApplicants)
}

func TestOpportunityRepository_CloseExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	owner := createTestUser(t, db, "biz@example.com", models.UserRoleBusiness)
	profile := createTestBusinessProfile(t, db, owner.ID)

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	expired := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.EndDate = &past
	})
	running := createTestOpportunity(t, db, profile.ID, func(o *models.Opportunity) {
		o.EndDate = &future
	})
	openEnded := createTestOpportunity(t, db, profile.ID, nil)

	closed, err := repo.CloseExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	reloaded, err := repo.FindByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OpportunityStatusClosed, reloaded.Status)

	for _, id := range []string{running.ID, openEnded.ID} {
		still, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.OpportunityStatusActive, still.Status)
	}
}

func TestOpportunityRepository_ListByBusiness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOpportunityRepository(db)
	ctx := testContext()

	ownerA := createTestUser(t, db, "a@example.com", models.UserRoleBusiness)
	profileA := createTestBusinessProfile(t, db, ownerA.ID)
	ownerB := createTestUser(t, db, "b@example.com", models.UserRoleBusiness)
	profileB := &models.BusinessProfile{UserID: ownerB.ID, CompanyName: "Other Corp"}
	require.NoError(t, db.Create(profileB).Error)

	older := createTestOpportunity(t, db, profileA.ID, func(o *models.Opportunity) {
		o.CreatedAt = time.Now().Add(-2 * time.Hour)
	})
	draft := createTestOpportunity(t, db, profileA.ID, func(o *models.Opportunity) {
		o.Status = models.OpportunityStatusDraft
		o.CreatedAt = time.Now().Add(-time.Hour)
	})
	createTestOpportunity(t, db, profileB.ID, nil)

	// Own postings only, every status, newest first.
	listed, err := repo.ListByBusiness(ctx, profileA.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, draft.ID, listed[0].ID)
	assert.Equal(t, older.ID, listed[1].ID)
}
