package repository

import (
	"context"
	"time"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatSessionRepository handles database operations for chat sessions
type ChatSessionRepository struct {
	db *gorm.DB
}

// NewChatSessionRepository creates a new chat session repository
func NewChatSessionRepository(db *gorm.DB) *ChatSessionRepository {
	return &ChatSessionRepository{db: db}
}

// Create creates a new chat session
func (r *ChatSessionRepository) Create(ctx context.Context, session *models.ChatSession) error {
	return r.db.WithContext(ctx).Omit("Organization", "Messages").Create(session).Error
}

// GetByIDForOrganization retrieves a session only if it belongs to the organization
func (r *ChatSessionRepository) GetByIDForOrganization(ctx context.Context, id, orgID uuid.UUID) (*models.ChatSession, error) {
	var session models.ChatSession
	err := r.db.WithContext(ctx).First(&session, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByOrganization retrieves sessions of an organization, most recently active first
func (r *ChatSessionRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.ChatSession, int64, error) {
	var sessions []models.ChatSession
	var total int64

	// Get total count
	if err := r.db.WithContext(ctx).Model(&models.ChatSession{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("updated_at DESC").
		Order("id").
		Limit(limit).Offset(offset).
		Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// UpdateTitle renames a session if it belongs to the organization
func (r *ChatSessionRepository) UpdateTitle(ctx context.Context, id, orgID uuid.UUID, title string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ChatSession{}).
		Where("id = ? AND organization_id = ?", id, orgID).
		Updates(map[string]interface{}{"title": title, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Touch bumps updated_at after a message is appended
func (r *ChatSessionRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.ChatSession{}).
		Where("id = ?", id).
		Update("updated_at", at).Error
}

// DeleteForOrganization hard-deletes a session and its messages
func (r *ChatSessionRepository) DeleteForOrganization(ctx context.Context, id, orgID uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&models.ChatSession{}).Select("id").Where("id = ? AND organization_id = ?", id, orgID)
		if err := tx.Where("session_id IN (?)", owned).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ChatSession{}, "id = ? AND organization_id = ?", id, orgID)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
