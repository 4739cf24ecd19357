package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shadowme_backend/internal/models"
)

var (
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrOpportunityFull     = errors.New("opportunity has no remaining capacity")
)

// OpportunityFilter narrows the public listing. Filters combine
// conjunctively; zero values mean "no constraint".
type OpportunityFilter struct {
	Industry string `form:"industry"`
	Location string `form:"location"`
	IsRemote *bool  `form:"is_remote"`
}

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *models.Opportunity) error
	FindByID(ctx context.Context, id string) (*models.Opportunity, error)
	Update(ctx context.Context, opportunity *models.Opportunity) error
	ListActive(ctx context.Context, filter OpportunityFilter) ([]models.Opportunity, error)
	ListByBusiness(ctx context.Context, businessProfileID string) ([]models.Opportunity, error)

	// IncrementApplicants atomically claims one application slot on an
	// active opportunity. Returns ErrOpportunityFull when the guarded
	// update matches no row.
	IncrementApplicants(ctx context.Context, id string) error
	DecrementApplicants(ctx context.Context, id string) error

	// CloseExpired transitions active opportunities whose end date has
	// passed. Returns the number of rows closed.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}

type OpportunityRepositoryImpl struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) OpportunityRepository {
	return &OpportunityRepositoryImpl{db: db}
}

func (r *OpportunityRepositoryImpl) Create(ctx context.Context, opportunity *models.Opportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

func (r *OpportunityRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Opportunity, error) {
	var opportunity models.Opportunity
	err := r.db.WithContext(ctx).Preload("BusinessProfile").First(&opportunity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, err
	}
	return &opportunity, nil
}

func (r *OpportunityRepositoryImpl) Update(ctx context.Context, opportunity *models.Opportunity) error {
	result := r.db.WithContext(ctx).Model(opportunity).Updates(map[string]interface{}{
		"title":          opportunity.Title,
		"description":    opportunity.Description,
		"industry":       opportunity.Industry,
		"duration":       opportunity.Duration,
		"requirements":   opportunity.Requirements,
		"skills":         opportunity.Skills,
		"location":       opportunity.Location,
		"is_remote":      opportunity.IsRemote,
		"max_applicants": opportunity.MaxApplicants,
		"status":         opportunity.Status,
		"start_date":     opportunity.StartDate,
		"end_date":       opportunity.EndDate,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) ListActive(ctx context.Context, filter OpportunityFilter) ([]models.Opportunity, error) {
	query := r.db.WithContext(ctx).
		Preload("BusinessProfile").
		Where("status = ?", models.OpportunityStatusActive)

	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.IsRemote != nil {
		query = query.Where("is_remote = ?", *filter.IsRemote)
	}

	var opportunities []models.Opportunity
	err := query.Order("created_at DESC").Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepositoryImpl) ListByBusiness(ctx context.Context, businessProfileID string) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	err := r.db.WithContext(ctx).
		Where("business_profile_id = ?", businessProfileID).
		Order("created_at DESC").
		Find(&opportunities).Error
	return opportunities, err
}

func (r *OpportunityRepositoryImpl) IncrementApplicants(ctx context.Context, id string) error {
	// The WHERE clause carries the capacity check so two concurrent
	// applicants cannot both take the last slot.
	result := r.db.WithContext(ctx).Model(&models.Opportunity{}).
		Where("id = ? AND status = ? AND current_applicants < max_applicants", id, models.OpportunityStatusActive).
		Update("current_applicants", gorm.Expr("current_applicants + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityFull
	}
	return nil
}

func (r *OpportunityRepositoryImpl) DecrementApplicants(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.Opportunity{}).
		Where("id = ? AND current_applicants > 0", id).
		Update("current_applicants", gorm.Expr("current_applicants - ?", 1)).Error
}

func (r *OpportunityRepositoryImpl) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Opportunity{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", models.OpportunityStatusActive, now).
		Updates(map[string]interface{}{
			"status":     models.OpportunityStatusClosed,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
