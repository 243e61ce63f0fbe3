package repository

import (
	"context"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Omit("Organization").Create(membership).Error
}

// GetByUserAndOrganization retrieves the membership of a user in an organization
func (r *MembershipRepository) GetByUserAndOrganization(ctx context.Context, userID string, orgID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		First(&membership, "user_id = ? AND organization_id = ?", userID, orgID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByUser retrieves all memberships of a user with their organizations
func (r *MembershipRepository) ListByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
