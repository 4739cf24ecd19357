package repositories

import (
	"context"

	"gorm.io/gorm"

	"shadowme_backend/internal/models"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error

	// ListByApplication returns the thread oldest first.
	ListByApplication(ctx context.Context, applicationID string) ([]models.Message, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *MessageRepositoryImpl) ListByApplication(ctx context.Context, applicationID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}
