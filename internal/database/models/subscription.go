package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the billing read model of an organization.
// It is written by the billing integration and only read here.
type Subscription struct {
	BaseModel
	OrganizationID   uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Tier             SubscriptionTier   `json:"tier" gorm:"type:varchar(20);not null;default:'free'"`
	Status           SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	CurrentPeriodEnd *time.Time         `json:"current_period_end,omitempty"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// FreeSubscription is what an organization without a billing record gets
func FreeSubscription(orgID uuid.UUID) *Subscription {
	return &Subscription{
		OrganizationID: orgID,
		Tier:           TierFree,
		Status:         SubscriptionStatusActive,
	}
}
