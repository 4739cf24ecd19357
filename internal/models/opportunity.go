package models

import (
	"time"

	"gorm.io/datatypes"
)

type Opportunity struct {
	BaseModel
	BusinessProfileID string         `gorm:"type:uuid;index;not null" json:"business_profile_id"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	Industry          string         `gorm:"not null;index" json:"industry"`
	Duration          string         `json:"duration"` // e.g. "1 week", "2 weeks"
	Requirements      string         `gorm:"type:text" json:"requirements"`
	Skills            datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Location          string         `gorm:"index" json:"location"`
	IsRemote          bool           `gorm:"default:false" json:"is_remote"`
	MaxApplicants     int            `gorm:"default:5" json:"max_applicants"`
	// CurrentApplicants is maintained server-side via a guarded UPDATE,
	// never through read-modify-write.
	CurrentApplicants int               `gorm:"default:0" json:"current_applicants"`
	Status            OpportunityStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	StartDate         *time.Time        `json:"start_date,omitempty"`
	EndDate           *time.Time        `json:"end_date,omitempty"`

	BusinessProfile *BusinessProfile `gorm:"foreignKey:BusinessProfileID" json:"business_profile,omitempty"`
	Applications    []Application    `gorm:"foreignKey:OpportunityID" json:"-"`
}
