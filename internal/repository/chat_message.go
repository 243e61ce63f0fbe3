package repository

import (
	"context"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessageRepository handles database operations for chat messages
type ChatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

// Create appends a message
func (r *ChatMessageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListBySession retrieves the messages of a session in insertion order
func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("sequence ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
