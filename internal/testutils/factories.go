package testutils

import (
	"fmt"
	"time"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with a unique name
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "org-" + id.String()[:8],
		DisplayName: "Test Organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name + " Display Name"
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a member-role membership for a random user
func (f *MembershipFactory) Create(orgID uuid.UUID) *models.Membership {
	return f.WithRole(orgID, "user-"+uuid.NewString()[:8], models.MemberRoleMember)
}

// WithRole creates a membership for a specific user and role
func (f *MembershipFactory) WithRole(orgID uuid.UUID, userID string, role models.MemberRole) *models.Membership {
	return &models.Membership{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
	}
}

// SubscriptionFactory provides methods to create test Subscription data
type SubscriptionFactory struct{}

// NewSubscriptionFactory creates a new SubscriptionFactory
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// Create creates an active free subscription
func (f *SubscriptionFactory) Create(orgID uuid.UUID) *models.Subscription {
	return models.FreeSubscription(orgID)
}

// WithTier creates a subscription on the given tier and status
func (f *SubscriptionFactory) WithTier(orgID uuid.UUID, tier models.SubscriptionTier, status models.SubscriptionStatus) *models.Subscription {
	sub := f.Create(orgID)
	sub.Tier = tier
	sub.Status = status
	return sub
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a pending text document
func (f *DocumentFactory) Create(orgID uuid.UUID) *models.Document {
	return &models.Document{
		OrganizationID: orgID,
		DisplayName:    "notes.txt",
		MimeType:       "text/plain",
		SizeBytes:      128,
		Status:         models.DocumentStatusPending,
	}
}

// WithName creates a pending document with a custom display name
func (f *DocumentFactory) WithName(orgID uuid.UUID, name string) *models.Document {
	doc := f.Create(orgID)
	doc.DisplayName = name
	return doc
}

// WithStatus creates a document already in the given status
func (f *DocumentFactory) WithStatus(orgID uuid.UUID, status models.DocumentStatus) *models.Document {
	doc := f.Create(orgID)
	doc.Status = status
	if status == models.DocumentStatusReady {
		ref := fmt.Sprintf("%s_%s", orgID, uuid.NewString())
		doc.RemoteIndexRef = &ref
	}
	return doc
}

// ChatSessionFactory provides methods to create test ChatSession data
type ChatSessionFactory struct{}

// NewChatSessionFactory creates a new ChatSessionFactory
func NewChatSessionFactory() *ChatSessionFactory {
	return &ChatSessionFactory{}
}

// Create creates a session titled "New chat"
func (f *ChatSessionFactory) Create(orgID uuid.UUID) *models.ChatSession {
	return &models.ChatSession{
		OrganizationID: orgID,
		Title:          "New chat",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Membership   *MembershipFactory
	Subscription *SubscriptionFactory
	Document     *DocumentFactory
	ChatSession  *ChatSessionFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
		Subscription: NewSubscriptionFactory(),
		Document:     NewDocumentFactory(),
		ChatSession:  NewChatSessionFactory(),
	}
}
