package dto

import (
	"time"

	"shadowme_backend/internal/models"
)

// --- Application Requests ---

type CreateApplicationRequest struct {
	OpportunityID string `json:"opportunity_id" validate:"required,uuid4"`
	CoverLetter   string `json:"cover_letter" validate:"required,min=10,max=5000"`
	Notes         string `json:"notes" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,is-application-status"`
	Notes  string                   `json:"notes" validate:"omitempty,max=5000"`
}

// --- Application Responses ---

type ApplicationResponse struct {
	ID               string                   `json:"id"`
	StudentProfileID string                   `json:"student_profile_id"`
	OpportunityID    string                   `json:"opportunity_id"`
	Status           models.ApplicationStatus `json:"status"`
	CoverLetter      string                   `json:"cover_letter"`
	AppliedAt        time.Time                `json:"applied_at"`
	RespondedAt      *time.Time               `json:"responded_at,omitempty"`
	Notes            string                   `json:"notes,omitempty"`

	Opportunity    *OpportunityResponse    `json:"opportunity,omitempty"`
	StudentProfile *StudentProfileResponse `json:"student_profile,omitempty"`
}

func ToApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:               a.ID,
		StudentProfileID: a.StudentProfileID,
		OpportunityID:    a.OpportunityID,
		Status:           a.Status,
		CoverLetter:      a.CoverLetter,
		AppliedAt:        a.AppliedAt,
		RespondedAt:      a.RespondedAt,
		Notes:            a.Notes,
	}
	if a.Opportunity != nil {
		opp := ToOpportunityResponse(a.Opportunity)
		resp.Opportunity = &opp
	}
	if a.StudentProfile != nil {
		profile := ToStudentProfileResponse(a.StudentProfile)
		resp.StudentProfile = &profile
	}
	return resp
}

func ToApplicationResponses(applications []models.Application) []ApplicationResponse {
	responses := make([]ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, ToApplicationResponse(&applications[i]))
	}
	return responses
}
