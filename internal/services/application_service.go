package services

import (
	"context"
	"errors"
	"fmt"

	"shadowme_backend/internal/email"
	"shadowme_backend/internal/logger"
	"shadowme_backend/internal/models"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/services/dto"
	"shadowme_backend/pkg/apperrors"
)

// ApplicationService owns the application lifecycle from apply to the
// business's decision.
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	opportunityRepo repositories.OpportunityRepository
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	opportunityRepo repositories.OpportunityRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		emailProvider:   emailProvider,
	}
}

// Apply creates a pending application. The applicant slot is claimed with a
// guarded increment before the row is inserted; on insert failure the slot
// is released again.
func (s *ApplicationService) Apply(ctx context.Context, userID string, req dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	profile, err := s.profileRepo.FindStudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrStudentProfileRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find student profile", 500)
	}

	opportunity, err := s.opportunityRepo.FindByID(ctx, req.OpportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find opportunity", 500)
	}

	if opportunity.Status != models.OpportunityStatusActive {
		return nil, apperrors.ErrOpportunityNotActive
	}

	if _, err := s.applicationRepo.FindByStudentAndOpportunity(ctx, profile.ID, req.OpportunityID); err == nil {
		return nil, apperrors.ErrApplicationAlreadyExists
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to check existing application", 500)
	}

	if err := s.opportunityRepo.IncrementApplicants(ctx, req.OpportunityID); err != nil {
		if errors.Is(err, repositories.ErrOpportunityFull) {
			return nil, apperrors.ErrOpportunityFull
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to reserve applicant slot", 500)
	}

	application := &models.Application{
		StudentProfileID: profile.ID,
		OpportunityID:    req.OpportunityID,
		Status:           models.ApplicationStatusPending,
		CoverLetter:      req.CoverLetter,
		Notes:            req.Notes,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if decErr := s.opportunityRepo.DecrementApplicants(ctx, req.OpportunityID); decErr != nil {
			logger.CtxError(ctx, "failed to release applicant slot",
				"opportunity_id", req.OpportunityID, "error", decErr)
		}
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrApplicationAlreadyExists
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create application", 500)
	}

	logger.CtxInfo(ctx, "application created",
		"application_id", application.ID,
		"opportunity_id", req.OpportunityID,
	)

	resp := dto.ToApplicationResponse(application)
	return &resp, nil
}

// ListForStudent returns the caller's applications, newest first.
func (s *ApplicationService) ListForStudent(ctx context.Context, userID string) ([]dto.ApplicationResponse, error) {
	profile, err := s.profileRepo.FindStudentProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrStudentProfileRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find student profile", 500)
	}

	applications, err := s.applicationRepo.ListByStudent(ctx, profile.ID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to list applications", 500)
	}
	return dto.ToApplicationResponses(applications), nil
}

// ListForOpportunity returns the applications to one opportunity. Only the
// owning business may call it.
func (s *ApplicationService) ListForOpportunity(ctx context.Context, userID, opportunityID string) ([]dto.ApplicationResponse, error) {
	profile, err := s.profileRepo.FindBusinessProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrBusinessProfileRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
	}

	opportunity, err := s.opportunityRepo.FindByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, repositories.ErrOpportunityNotFound) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find opportunity", 500)
	}

	if opportunity.BusinessProfileID != profile.ID {
		return nil, apperrors.ErrForbidden
	}

	applications, err := s.applicationRepo.ListByOpportunity(ctx, opportunityID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to list applications", 500)
	}
	return dto.ToApplicationResponses(applications), nil
}

// SetStatus updates an application's status and stamps responded_at. Any
// valid status value may be set from any current one, and switching an
// earlier decision overwrites it.
func (s *ApplicationService) SetStatus(ctx context.Context, userID, applicationID string, req dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	profile, err := s.profileRepo.FindBusinessProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrBusinessProfileRequired
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find application", 500)
	}

	if application.Opportunity == nil || application.Opportunity.BusinessProfileID != profile.ID {
		return nil, apperrors.ErrForbidden
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, req.Status, req.Notes); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to update application status", 500)
	}

	updated, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to reload application", 500)
	}

	logger.CtxInfo(ctx, "application status updated",
		"application_id", applicationID,
		"status", req.Status,
	)

	if req.Status == models.ApplicationStatusAccepted || req.Status == models.ApplicationStatusRejected {
		s.notifyStudent(ctx, updated, profile.CompanyName)
	}

	resp := dto.ToApplicationResponse(updated)
	return &resp, nil
}

// notifyStudent emails the applicant about the decision. Delivery failures
// are logged, never surfaced to the caller.
func (s *ApplicationService) notifyStudent(ctx context.Context, application *models.Application, companyName string) {
	if s.emailProvider == nil || application.StudentProfile == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, application.StudentProfile.UserID)
	if err != nil {
		logger.CtxWarn(ctx, "failed to load applicant for notification",
			"application_id", application.ID, "error", err)
		return
	}

	templateName := email.TemplateApplicationRejected
	subject := "Update on your application"
	if application.Status == models.ApplicationStatusAccepted {
		templateName = email.TemplateApplicationAccepted
		subject = fmt.Sprintf("You were accepted by %s", companyName)
	}

	opportunityTitle := ""
	if application.Opportunity != nil {
		opportunityTitle = application.Opportunity.Title
	}

	data := email.TemplateData{
		"StudentName":      user.FirstName,
		"CompanyName":      companyName,
		"OpportunityTitle": opportunityTitle,
	}

	go func() {
		if err := s.emailProvider.SendTemplate(user.Email, subject, templateName, data); err != nil {
			logger.Warn("failed to send application notification",
				"application_id", application.ID, "error", err)
		}
	}()
}
