package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"shadowme_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// StudentProfile operations
	CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error
	FindStudentProfileByID(ctx context.Context, id string) (*models.StudentProfile, error)
	FindStudentProfileByUserID(ctx context.Context, userID string) (*models.StudentProfile, error)
	UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error

	// BusinessProfile operations
	CreateBusinessProfile(ctx context.Context, profile *models.BusinessProfile) error
	FindBusinessProfileByID(ctx context.Context, id string) (*models.BusinessProfile, error)
	FindBusinessProfileByUserID(ctx context.Context, userID string) (*models.BusinessProfile, error)
	UpdateBusinessProfile(ctx context.Context, profile *models.BusinessProfile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// StudentProfile operations

func (r *ProfileRepositoryImpl) CreateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The unique index on user_id is the source of truth here,
		// no pre-check needed.
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindStudentProfileByID(ctx context.Context, id string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindStudentProfileByUserID(ctx context.Context, userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	result := r.db.WithContext(ctx).Model(profile).Updates(map[string]interface{}{
		"education_level":      profile.EducationLevel,
		"interests":            profile.Interests,
		"work_style":           profile.WorkStyle,
		"availability":         profile.Availability,
		"travel_distance":      profile.TravelDistance,
		"location":             profile.Location,
		"bio":                  profile.Bio,
		"skills":               profile.Skills,
		"completed_onboarding": profile.CompletedOnboarding,
		"updated_at":           time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// BusinessProfile operations

func (r *ProfileRepositoryImpl) CreateBusinessProfile(ctx context.Context, profile *models.BusinessProfile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindBusinessProfileByID(ctx context.Context, id string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindBusinessProfileByUserID(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	var profile models.BusinessProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateBusinessProfile(ctx context.Context, profile *models.BusinessProfile) error {
	result := r.db.WithContext(ctx).Model(profile).Updates(map[string]interface{}{
		"company_name":  profile.CompanyName,
		"industry":      profile.Industry,
		"company_size":  profile.CompanySize,
		"location":      profile.Location,
		"description":   profile.Description,
		"website":       profile.Website,
		"contact_email": profile.ContactEmail,
		"contact_phone": profile.ContactPhone,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
