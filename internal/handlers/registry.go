package handlers

import (
	"shadowme_backend/internal/services"
	"shadowme_backend/internal/validator"
)

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ProfileHandler     *ProfileHandler
	OpportunityHandler *OpportunityHandler
	ApplicationHandler *ApplicationHandler
	MessageHandler     *MessageHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, container.AuthService),
		ProfileHandler:     NewProfileHandler(base, container.ProfileService),
		OpportunityHandler: NewOpportunityHandler(base, container.OpportunityService, container.ApplicationService),
		ApplicationHandler: NewApplicationHandler(base, container.ApplicationService),
		MessageHandler:     NewMessageHandler(base, container.MessageService),
	}
}
