package dto

import (
	"time"

	"shadowme_backend/internal/models"
)

// --- Profile Requests ---

// SaveStudentProfileRequest carries a partial update: nil fields keep their
// stored value, the upsert merges the rest.
type SaveStudentProfileRequest struct {
	EducationLevel      *string  `json:"education_level,omitempty" validate:"omitempty,max=100"`
	Interests           []string `json:"interests,omitempty" validate:"omitempty,max=20,dive,max=100"`
	WorkStyle           *string  `json:"work_style,omitempty" validate:"omitempty,max=100"`
	Availability        *string  `json:"availability,omitempty" validate:"omitempty,max=100"`
	TravelDistance      *string  `json:"travel_distance,omitempty" validate:"omitempty,max=100"`
	Location            *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	Bio                 *string  `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Skills              []string `json:"skills,omitempty" validate:"omitempty,max=30,dive,max=100"`
	CompletedOnboarding *bool    `json:"completed_onboarding,omitempty"`
}

type SaveBusinessProfileRequest struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,min=1,max=255"`
	Industry     *string `json:"industry,omitempty" validate:"omitempty,max=100"`
	CompanySize  *string `json:"company_size,omitempty" validate:"omitempty,max=50"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Description  *string `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Website      *string `json:"website,omitempty" validate:"omitempty,url,max=255"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=50"`
}

// --- Profile Responses ---

type StudentProfileResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	EducationLevel      string    `json:"education_level"`
	Interests           []string  `json:"interests"`
	WorkStyle           string    `json:"work_style"`
	Availability        string    `json:"availability"`
	TravelDistance      string    `json:"travel_distance"`
	Location            string    `json:"location"`
	Bio                 string    `json:"bio"`
	Skills              []string  `json:"skills"`
	CompletedOnboarding bool      `json:"completed_onboarding"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type BusinessProfileResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CompanyName  string    `json:"company_name"`
	Industry     string    `json:"industry"`
	CompanySize  string    `json:"company_size"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Website      string    `json:"website"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToStudentProfileResponse(p *models.StudentProfile) StudentProfileResponse {
	return StudentProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		EducationLevel:      p.EducationLevel,
		Interests:           p.Interests,
		WorkStyle:           p.WorkStyle,
		Availability:        p.Availability,
		TravelDistance:      p.TravelDistance,
		Location:            p.Location,
		Bio:                 p.Bio,
		Skills:              p.Skills,
		CompletedOnboarding: p.CompletedOnboarding,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func ToBusinessProfileResponse(p *models.BusinessProfile) BusinessProfileResponse {
	return BusinessProfileResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		CompanyName:  p.CompanyName,
		Industry:     p.Industry,
		CompanySize:  p.CompanySize,
		Location:     p.Location,
		Description:  p.Description,
		Website:      p.Website,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		Verified:     p.Verified,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
