package models

type BusinessProfile struct {
	BaseModel
	UserID       string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName  string `gorm:"not null" json:"company_name"`
	Industry     string `json:"industry"`
	CompanySize  string `json:"company_size"`
	Location     string `json:"location"`
	Description  string `gorm:"type:text" json:"description"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	// Verified is set by an out-of-band review process; nothing downstream
	// reads it yet.
	Verified bool `gorm:"default:false" json:"verified"`
}
