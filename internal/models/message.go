package models

import "time"

// Message belongs to one application thread. SentAt defines the total order
// within the thread.
type Message struct {
	ID            string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ApplicationID string     `gorm:"type:uuid;not null;index" json:"application_id"`
	SenderID      string     `gorm:"type:uuid;not null;index" json:"sender_id"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	SentAt        time.Time  `gorm:"default:now();index" json:"sent_at"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
}
