package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"shadowme_backend/internal/models"
)

// --- Opportunity Requests ---

type CreateOpportunityRequest struct {
	Title         string     `json:"title" validate:"required,min=3,max=255"`
	Description   string     `json:"description" validate:"required,max=10000"`
	Industry      string     `json:"industry" validate:"required,max=100"`
	Duration      string     `json:"duration" validate:"omitempty,max=100"`
	Requirements  string     `json:"requirements" validate:"omitempty,max=5000"`
	Skills        []string   `json:"skills" validate:"omitempty,max=30,dive,max=100"`
	Location      string     `json:"location" validate:"omitempty,max=255"`
	IsRemote      bool       `json:"is_remote"`
	MaxApplicants *int       `json:"max_applicants,omitempty" validate:"omitempty,min=1,max=20"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

type UpdateOpportunityRequest struct {
	Title         *string                   `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description   *string                   `json:"description,omitempty" validate:"omitempty,max=10000"`
	Industry      *string                   `json:"industry,omitempty" validate:"omitempty,max=100"`
	Duration      *string                   `json:"duration,omitempty" validate:"omitempty,max=100"`
	Requirements  *string                   `json:"requirements,omitempty" validate:"omitempty,max=5000"`
	Skills        []string                  `json:"skills,omitempty" validate:"omitempty,max=30,dive,max=100"`
	Location      *string                   `json:"location,omitempty" validate:"omitempty,max=255"`
	IsRemote      *bool                     `json:"is_remote,omitempty"`
	MaxApplicants *int                      `json:"max_applicants,omitempty" validate:"omitempty,min=1,max=20"`
	Status        *models.OpportunityStatus `json:"status,omitempty" validate:"omitempty,is-opportunity-status"`
	StartDate     *time.Time                `json:"start_date,omitempty"`
	EndDate       *time.Time                `json:"end_date,omitempty"`
}

// --- Opportunity Responses ---

type OpportunityResponse struct {
	ID                string                   `json:"id"`
	BusinessProfileID string                   `json:"business_profile_id"`
	Title             string                   `json:"title"`
	Description       string                   `json:"description"`
	Industry          string                   `json:"industry"`
	Duration          string                   `json:"duration"`
	Requirements      string                   `json:"requirements"`
	Skills            []string                 `json:"skills"`
	Location          string                   `json:"location"`
	IsRemote          bool                     `json:"is_remote"`
	MaxApplicants     int                      `json:"max_applicants"`
	CurrentApplicants int                      `json:"current_applicants"`
	Status            models.OpportunityStatus `json:"status"`
	StartDate         *time.Time               `json:"start_date,omitempty"`
	EndDate           *time.Time               `json:"end_date,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`

	CompanyName string `json:"company_name,omitempty"`
}

// SkillsToJSON marshals a skill list for the jsonb column. A nil list is
// stored as an empty array, not NULL.
func SkillsToJSON(skills []string) datatypes.JSON {
	if skills == nil {
		skills = []string{}
	}
	raw, _ := json.Marshal(skills)
	return datatypes.JSON(raw)
}

func skillsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return []string{}
	}
	return skills
}

func ToOpportunityResponse(o *models.Opportunity) OpportunityResponse {
	resp := OpportunityResponse{
		ID:                o.ID,
		BusinessProfileID: o.BusinessProfileID,
		Title:             o.Title,
		Description:       o.Description,
		Industry:          o.Industry,
		Duration:          o.Duration,
		Requirements:      o.Requirements,
		Skills:            skillsFromJSON(o.Skills),
		Location:          o.Location,
		IsRemote:          o.IsRemote,
		MaxApplicants:     o.MaxApplicants,
		CurrentApplicants: o.CurrentApplicants,
		Status:            o.Status,
		StartDate:         o.StartDate,
		EndDate:           o.EndDate,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	if o.BusinessProfile != nil {
		resp.CompanyName = o.BusinessProfile.CompanyName
	}
	return resp
}

func ToOpportunityResponses(opportunities []models.Opportunity) []OpportunityResponse {
	responses := make([]OpportunityResponse, 0, len(opportunities))
	for i := range opportunities {
		responses = append(responses, ToOpportunityResponse(&opportunities[i]))
	}
	return responses
}
