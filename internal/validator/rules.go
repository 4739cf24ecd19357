package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"shadowme_backend/internal/models"
)

// registerCustomRules wires the enum rules used by the request DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-opportunity-status", validateOpportunityStatus)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.ValidUserRole(models.UserRole(fl.Field().String()))
}

func validateOpportunityStatus(fl validator.FieldLevel) bool {
	switch models.OpportunityStatus(fl.Field().String()) {
	case models.OpportunityStatusActive, models.OpportunityStatusClosed, models.OpportunityStatusDraft:
		return true
	}
	return false
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ValidApplicationStatus(models.ApplicationStatus(fl.Field().String()))
}
