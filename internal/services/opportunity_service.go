package services

import (
	"context"
	"errors"

	"shadowme_backend/internal/logger"
	"shadowme_backend/internal/models"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/services/dto"
	"shadowme_backend/pkg/apperrors"
)

const defaultMaxApplicants = 5

type OpportunityService struct {
	opportunityRepo repositories.OpportunityRepository
	profileRepo     repositories.ProfileRepository
}

func NewOpportunityService(
	opportunityRepo repositories.OpportunityRepository,
	profileRepo repositories.ProfileRepository,
) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
		profileRepo:     profileRepo,
	}
}

// List returns active opportunities, newest first. Filters combine
// conjunctively.
func (s *OpportunityService) List(ctx context.Context, filter repositories.OpportunityFilter) ([]dto.OpportunityResponse, error) {
	opportunities, err := s.opportunityRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to list opportunities", 500)
	}
	return dto.ToOpportunityResponses(opportunities), nil
}

func (s *OpportunityService) Get(ctx context.Context, id string) (*dto.OpportunityResponse, error) {
	opportunity, err := s.opportunityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find opportunity", 500)
	}

	resp := dto.ToOpportunityResponse(opportunity)
	return &resp, nil
}

func (s *OpportunityService) Create(ctx context.Context, userID string, req dto.CreateOpportunityRequest) (*dto.OpportunityResponse, error) {
	profile, err := s.businessProfileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	maxApplicants := defaultMaxApplicants
	if req.MaxApplicants != nil {
		maxApplicants = *req.MaxApplicants
	}

	opportunity := &models.Opportunity{
		BusinessProfileID: profile.ID,
		Title:             req.Title,
		Description:       req.Description,
		Industry:          req.Industry,
		Duration:          req.Duration,
		Requirements:      req.Requirements,
		Skills:            dto.SkillsToJSON(req.Skills),
		Location:          req.Location,
		IsRemote:          req.IsRemote,
		MaxApplicants:     maxApplicants,
		// New postings always start active with an empty counter, whatever
		// the caller sent.
		Status:            models.OpportunityStatusActive,
		CurrentApplicants: 0,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
	}

	if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create opportunity", 500)
	}

	logger.CtxInfo(ctx, "opportunity created",
		"opportunity_id", opportunity.ID,
		"business_profile_id", profile.ID,
	)

	resp := dto.ToOpportunityResponse(opportunity)
	return &resp, nil
}

func (s *OpportunityService) Update(ctx context.Context, userID, id string, req dto.UpdateOpportunityRequest) (*dto.OpportunityResponse, error) {
	profile, err := s.businessProfileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	opportunity, err := s.opportunityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find opportunity", 500)
	}

	if opportunity.BusinessProfileID != profile.ID {
		return nil, apperrors.ErrForbidden
	}

	if req.Title != nil {
		opportunity.Title = *req.Title
	}
	if req.Description != nil {
		opportunity.Description = *req.Description
	}
	if req.Industry != nil {
		opportunity.Industry = *req.Industry
	}
	if req.Duration != nil {
		opportunity.Duration = *req.Duration
	}
	if req.Requirements != nil {
		opportunity.Requirements = *req.Requirements
	}
	if req.Skills != nil {
		opportunity.Skills = dto.SkillsToJSON(req.Skills)
	}
	if req.Location != nil {
		opportunity.Location = *req.Location
	}
	if req.IsRemote != nil {
		opportunity.IsRemote = *req.IsRemote
	}
	if req.MaxApplicants != nil {
		opportunity.MaxApplicants = *req.MaxApplicants
	}
	if req.Status != nil {
		opportunity.Status = *req.Status
	}
	if req.StartDate != nil {
		opportunity.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		opportunity.EndDate = req.EndDate
	}

	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update opportunity", 500)
	}

	resp := dto.ToOpportunityResponse(opportunity)
	return &resp, nil
}

// ListForBusiness returns the caller's own opportunities in every status.
func (s *OpportunityService) ListForBusiness(ctx context.Context, userID string) ([]dto.OpportunityResponse, error) {
	profile, err := s.businessProfileFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	opportunities, err := s.opportunityRepo.ListByBusiness(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to list opportunities", 500)
	}
	return dto.ToOpportunityResponses(opportunities), nil
}

func (s *OpportunityService) businessProfileFor(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	profile, err := s.profileRepo.FindBusinessProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrBusinessProfileRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
	}
	return profile, nil
}
