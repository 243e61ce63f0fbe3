package service

import (
	"context"
	"errors"
	"fmt"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenancyGuard resolves the caller's membership in an organization
type TenancyGuard struct {
	memberships repository.MembershipRepositoryInterface
}

// NewTenancyGuard creates a new tenancy guard
func NewTenancyGuard(memberships repository.MembershipRepositoryInterface) *TenancyGuard {
	return &TenancyGuard{memberships: memberships}
}

// Authorize returns the caller's membership if its role is at least minimum.
// It has no side effects.
func (g *TenancyGuard) Authorize(ctx context.Context, userID string, orgID uuid.UUID, minimum models.MemberRole) (*models.Membership, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingIdentity
	}

	membership, err := g.memberships.GetByUserAndOrganization(ctx, userID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotOrganizationMember
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	if !membership.Role.AtLeast(minimum) {
		return nil, apperrors.ErrInsufficientRole
	}
	return membership, nil
}
