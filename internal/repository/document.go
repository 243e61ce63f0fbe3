package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Omit("Organization").Create(doc).Error
}

// GetByIDForOrganization retrieves a document only if it belongs to the organization
func (r *DocumentRepository) GetByIDForOrganization(ctx context.Context, id, orgID uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByOrganization retrieves documents of an organization with an optional
// case-insensitive display name filter, newest first
func (r *DocumentRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, search string, limit, offset int) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Document{}).Where("organization_id = ?", orgID)
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("display_name ILIKE ?", "%"+likeEscaper.Replace(search)+"%")
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Order("id").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// ListReadyByOrganization retrieves every ready document of an organization
func (r *DocumentRepository) ListReadyByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", orgID, models.DocumentStatusReady).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// TransitionStatus moves a document from one status to the next only if it is
// still in the expected status. It reports whether the row was updated.
func (r *DocumentRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.DocumentStatus, update DocumentStatusUpdate) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusChange, from, to)
	}

	values := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if update.RemoteIndexRef != nil {
		values["remote_index_ref"] = *update.RemoteIndexRef
	}
	if update.FailureReason != "" {
		values["failure_reason"] = update.FailureReason
	}

	result := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("id = ? AND status = ?", id, from).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// FailStaleSyncs marks documents that have been pending or syncing since before
// cutoff as failed. It reports how many rows were moved.
func (r *DocumentRepository) FailStaleSyncs(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("status IN ? AND updated_at < ?",
			[]models.DocumentStatus{models.DocumentStatusPending, models.DocumentStatusSyncing}, cutoff).
		Updates(map[string]interface{}{
			"status":         models.DocumentStatusFailed,
			"failure_reason": reason,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteForOrganization deletes a document if it belongs to the organization
func (r *DocumentRepository) DeleteForOrganization(ctx context.Context, id, orgID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Document{}, "id = ? AND organization_id = ?", id, orgID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
