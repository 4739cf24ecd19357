package models

import "time"

type User struct {
	BaseModel
	Email           string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string   `gorm:"not null" json:"-"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	ProfileImageURL string   `json:"profile_image_url"`
	Role            UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	StudentProfile  *StudentProfile  `gorm:"foreignKey:UserID" json:"student_profile,omitempty"`
	BusinessProfile *BusinessProfile `gorm:"foreignKey:UserID" json:"business_profile,omitempty"`
	RefreshTokens   []RefreshToken   `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
