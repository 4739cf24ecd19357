package dto

import (
	"time"

	"shadowme_backend/internal/models"
)

// --- Message Requests ---

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

// --- Message Responses ---

type MessageResponse struct {
	ID            string     `json:"id"`
	ApplicationID string     `json:"application_id"`
	SenderID      string     `json:"sender_id"`
	Content       string     `json:"content"`
	SentAt        time.Time  `json:"sent_at"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
}

func ToMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		SenderID:      m.SenderID,
		Content:       m.Content,
		SentAt:        m.SentAt,
		ReadAt:        m.ReadAt,
	}
}

func ToMessageResponses(messages []models.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return responses
}
