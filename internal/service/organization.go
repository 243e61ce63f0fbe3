package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/logger"
	"knowledge-base-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles organization creation and membership
type OrganizationService struct {
	orgs        repository.OrganizationRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	validator   *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgs repository.OrganizationRepositoryInterface, memberships repository.MembershipRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		orgs:        orgs,
		memberships: memberships,
		validator:   validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" validate:"required,max=200"`
}

// AddMemberRequest represents the request to add a user to an organization
type AddMemberRequest struct {
	UserID string            `json:"user_id" validate:"required,max=255"`
	Role   models.MemberRole `json:"role" validate:"required,oneof=member admin owner"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// MembershipResponse represents a user's membership in an organization
type MembershipResponse struct {
	ID             uuid.UUID             `json:"id"`
	UserID         string                `json:"user_id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Role           models.MemberRole     `json:"role"`
	Organization   *OrganizationResponse `json:"organization,omitempty"`
	CreatedAt      string                `json:"created_at"`
}

// Create creates an organization owned by userID with a free subscription
func (s *OrganizationService) Create(ctx context.Context, userID string, req *CreateOrganizationRequest) (*MembershipResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingIdentity
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	// Check if organization with same name exists
	existing, err := s.orgs.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	org := &models.Organization{
		Name:        req.Name,
		DisplayName: req.DisplayName,
	}
	owner := &models.Membership{
		UserID: userID,
		Role:   models.MemberRoleOwner,
	}
	subscription := &models.Subscription{
		Tier:   models.TierFree,
		Status: models.SubscriptionStatusActive,
	}

	if err := s.orgs.CreateWithOwner(ctx, org, owner, subscription); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	logger.WithContext(ctx).WithField("organization_id", org.ID).Info("organization created")

	owner.Organization = *org
	return toMembershipResponse(owner), nil
}

// AddMember adds a user to the organization. Only an owner may grant the owner role.
func (s *OrganizationService) AddMember(ctx context.Context, orgID uuid.UUID, actor *models.Membership, req *AddMemberRequest) (*MembershipResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if req.Role == models.MemberRoleOwner && actor.Role != models.MemberRoleOwner {
		return nil, apperrors.ErrOwnerRoleRequired
	}

	existing, err := s.memberships.GetByUserAndOrganization(ctx, req.UserID, orgID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMembershipExists
	}

	membership := &models.Membership{
		UserID:         req.UserID,
		OrganizationID: orgID,
		Role:           req.Role,
	}
	if err := s.memberships.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organization_id": orgID,
		"member":          req.UserID,
		"role":            req.Role,
	}).Info("member added")

	return toMembershipResponse(membership), nil
}

// ListMemberships lists the organizations the user belongs to
func (s *OrganizationService) ListMemberships(ctx context.Context, userID string) ([]MembershipResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingIdentity
	}

	memberships, err := s.memberships.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]MembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *toMembershipResponse(&memberships[i])
	}
	return responses, nil
}

func toMembershipResponse(m *models.Membership) *MembershipResponse {
	resp := &MembershipResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           m.Role,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
	if m.Organization.ID != uuid.Nil {
		resp.Organization = &OrganizationResponse{
			ID:          m.Organization.ID,
			Name:        m.Organization.Name,
			DisplayName: m.Organization.DisplayName,
			CreatedAt:   m.Organization.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   m.Organization.UpdatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
