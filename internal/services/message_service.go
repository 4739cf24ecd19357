package services

import (
	"context"
	"errors"
	"strings"

	"shadowme_backend/internal/models"
	"shadowme_backend/internal/repositories"
	"shadowme_backend/internal/services/dto"
	"shadowme_backend/pkg/apperrors"
)

// MessageService runs the per-application thread between the applicant and
// the opportunity's business.
type MessageService struct {
	messageRepo     repositories.MessageRepository
	applicationRepo repositories.ApplicationRepository
	profileRepo     repositories.ProfileRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	applicationRepo repositories.ApplicationRepository,
	profileRepo repositories.ProfileRepository,
) *MessageService {
	return &MessageService{
		messageRepo:     messageRepo,
		applicationRepo: applicationRepo,
		profileRepo:     profileRepo,
	}
}

// List returns the thread oldest first. Only the two participants may read
// it.
func (s *MessageService) List(ctx context.Context, userID, applicationID string) ([]dto.MessageResponse, error) {
	if _, err := s.authorizeParticipant(ctx, userID, applicationID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to list messages", 500)
	}
	return dto.ToMessageResponses(messages), nil
}

func (s *MessageService) Send(ctx context.Context, userID, applicationID string, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if _, err := s.authorizeParticipant(ctx, userID, applicationID); err != nil {
		return nil, err
	}

	// min=1 on the DTO lets whitespace-only content through.
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyMessage
	}

	message := &models.Message{
		ApplicationID: applicationID,
		SenderID:      userID,
		Content:       content,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to create message", 500)
	}

	resp := dto.ToMessageResponse(message)
	return &resp, nil
}

// authorizeParticipant resolves the application and checks the caller is
// either the applicant or the opportunity's business owner.
func (s *MessageService) authorizeParticipant(ctx context.Context, userID, applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find application", 500)
	}

	if application.StudentProfile != nil && application.StudentProfile.UserID == userID {
		return application, nil
	}

	if application.Opportunity != nil {
		businessProfile, err := s.profileRepo.FindBusinessProfileByID(ctx, application.Opportunity.BusinessProfileID)
		if err == nil && businessProfile.UserID == userID {
			return application, nil
		}
		if err != nil && !errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "Failed to find business profile", 500)
		}
	}

	return nil, apperrors.ErrNotAParticipant
}
