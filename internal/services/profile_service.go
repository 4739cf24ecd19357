package services

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"shadowme_backend/internal/logger"
	"shadowme_backend/internal/models"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/services/dto"
	"shadowme_backend/pkg/apperrors"
)

// ProfileService owns the student and business profile upserts. Both are
// keyed by user id: the first save creates, later saves merge.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetStudentProfile(ctx context.Context, userID string) (*dto.StudentProfileResponse, error) {
	profile, err := s.profileRepo.FindStudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find student profile", 500)
	}

	resp := dto.ToStudentProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileService) SaveStudentProfile(ctx context.Context, userID string, req dto.SaveStudentProfileRequest) (*dto.StudentProfileResponse, error) {
	profile, err := s.profileRepo.FindStudentProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		applyStudentProfileUpdates(profile, req)
		if err := s.profileRepo.UpdateStudentProfile(ctx, profile); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update student profile", 500)
		}
	case errors.Is(err, repositories.ErrProfileNotFound):
		profile = &models.StudentProfile{UserID: userID}
		applyStudentProfileUpdates(profile, req)
		if err := s.profileRepo.CreateStudentProfile(ctx, profile); err != nil {
			if errors.Is(err, repositories.ErrProfileAlreadyExists) {
				// Lost a create race, merge onto the winner's row.
				return s.SaveStudentProfile(ctx, userID, req)
			}
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create student profile", 500)
		}
		logger.CtxInfo(ctx, "student profile created", "profile_id", profile.ID)
	default:
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find student profile", 500)
	}

	resp := dto.ToStudentProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileService) GetBusinessProfile(ctx context.Context, userID string) (*dto.BusinessProfileResponse, error) {
	profile, err := s.profileRepo.FindBusinessProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrBusinessProfileNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
	}

	resp := dto.ToBusinessProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileService) SaveBusinessProfile(ctx context.Context, userID string, req dto.SaveBusinessProfileRequest) (*dto.BusinessProfileResponse, error) {
	profile, err := s.profileRepo.FindBusinessProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		applyBusinessProfileUpdates(profile, req)
		if err := s.profileRepo.UpdateBusinessProfile(ctx, profile); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update business profile", 500)
		}
	case errors.Is(err, repositories.ErrProfileNotFound):
		if req.CompanyName == nil || *req.CompanyName == "" {
			return nil, apperrors.ValidationError(map[string]string{
				"company_name": "This field is required",
			})
		}
		profile = &models.BusinessProfile{UserID: userID}
		applyBusinessProfileUpdates(profile, req)
		if err := s.profileRepo.CreateBusinessProfile(ctx, profile); err != nil {
			if errors.Is(err, repositories.ErrProfileAlreadyExists) {
				return s.SaveBusinessProfile(ctx, userID, req)
			}
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create business profile", 500)
		}
		logger.CtxInfo(ctx, "business profile created", "profile_id", profile.ID)
	default:
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
	}

	resp := dto.ToBusinessProfileResponse(profile)
	return &resp, nil
}

func applyStudentProfileUpdates(profile *models.StudentProfile, req dto.SaveStudentProfileRequest) {
	if req.EducationLevel != nil {
		profile.EducationLevel = *req.EducationLevel
	}
	if req.Interests != nil {
		profile.Interests = pq.StringArray(req.Interests)
	}
	if req.WorkStyle != nil {
		profile.WorkStyle = *req.WorkStyle
	}
	if req.Availability != nil {
		profile.Availability = *req.Availability
	}
	if req.TravelDistance != nil {
		profile.TravelDistance = *req.TravelDistance
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.Skills = pq.StringArray(req.Skills)
	}
	if req.CompletedOnboarding != nil {
		profile.CompletedOnboarding = *req.CompletedOnboarding
	}
}

func applyBusinessProfileUpdates(profile *models.BusinessProfile, req dto.SaveBusinessProfileRequest) {
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.ContactEmail != nil {
		profile.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		profile.ContactPhone = *req.ContactPhone
	}
}
