package models

import (
	"github.com/google/uuid"
)

// Membership links an authenticated user to an organization with a role
type Membership struct {
	BaseModel
	UserID         string     `json:"user_id" gorm:"not null;size:255;uniqueIndex:idx_memberships_user_org" validate:"required,max=255"`
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_memberships_user_org" validate:"required"`
	Role           MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`

	// Relationships
	Organization Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
