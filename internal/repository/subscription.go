package repository

import (
	"context"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionRepository reads the billing state of organizations
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetByOrganizationID retrieves the subscription of an organization
func (r *SubscriptionRepository) GetByOrganizationID(ctx context.Context, orgID uuid.UUID) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.WithContext(ctx).First(&subscription, "organization_id = ?", orgID).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// Upsert writes the subscription keyed by organization; used by billing sync and seeding
func (r *SubscriptionRepository) Upsert(ctx context.Context, subscription *models.Subscription) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tier", "status", "current_period_end", "updated_at"}),
	}).Create(subscription).Error
}
