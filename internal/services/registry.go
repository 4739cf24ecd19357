package services

import (
	"gorm.io/gorm"

	"shadowme_backend/internal/email"
	"shadowme_backend/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        *AuthService
	ProfileService     *ProfileService
	OpportunityService *OpportunityService
	ApplicationService *ApplicationService
	MessageService     *MessageService
}

// NewServiceContainer wires repositories and services over one DB handle.
func NewServiceContainer(db *gorm.DB, emailProvider email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	opportunityRepo := repositories.NewOpportunityRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, profileRepo),
		ProfileService:     NewProfileService(profileRepo),
		OpportunityService: NewOpportunityService(opportunityRepo, profileRepo),
		ApplicationService: NewApplicationService(applicationRepo, opportunityRepo, profileRepo, userRepo, emailProvider),
		MessageService:     NewMessageService(messageRepo, applicationRepo, profileRepo),
	}
}
