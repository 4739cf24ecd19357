package models

import (
	"github.com/lib/pq"
)

// StudentProfile is the 1:1 preference record a student fills in during
// onboarding. CompletedOnboarding flips only when the final step is
// submitted; partial saves keep it false.
type StudentProfile struct {
	BaseModel
	UserID              string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	EducationLevel      string         `json:"education_level"`
	Interests           pq.StringArray `gorm:"type:text[]" json:"interests"`
	WorkStyle           string         `json:"work_style"`      // team, independent, mixed
	Availability        string         `json:"availability"`    // weekdays, weekends, flexible
	TravelDistance      string         `json:"travel_distance"` // local, regional, remote
	Location            string         `json:"location"`
	Bio                 string         `gorm:"type:text" json:"bio"`
	Skills              pq.StringArray `gorm:"type:text[]" json:"skills"`
	CompletedOnboarding bool           `gorm:"default:false" json:"completed_onboarding"`
}
