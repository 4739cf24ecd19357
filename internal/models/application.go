package models

import "time"

// Application links one student profile to one opportunity. The pair is
// unique: a student applies to an opportunity at most once.
type Application struct {
	ID               string            `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentProfileID string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_student_opportunity" json:"student_profile_id"`
	OpportunityID    string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_student_opportunity" json:"opportunity_id"`
	Status           ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter      string            `gorm:"type:text;not null" json:"cover_letter"`
	AppliedAt        time.Time         `gorm:"default:now()" json:"applied_at"`
	// RespondedAt is stamped on every status change, including a re-set to
	// pending.
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes"`

	StudentProfile *StudentProfile `gorm:"foreignKey:StudentProfileID" json:"student_profile,omitempty"`
	Opportunity    *Opportunity    `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`
	Messages       []Message       `gorm:"foreignKey:ApplicationID" json:"-"`
}
