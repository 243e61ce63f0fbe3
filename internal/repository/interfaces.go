package repository

import (
	"context"
	"time"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, org *models.Organization, owner *models.Membership, subscription *models.Subscription) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByName(ctx context.Context, name string) (*models.Organization, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByUserAndOrganization(ctx context.Context, userID string, orgID uuid.UUID) (*models.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]models.Membership, error)
}

// SubscriptionRepositoryInterface is the billing read model
type SubscriptionRepositoryInterface interface {
	GetByOrganizationID(ctx context.Context, orgID uuid.UUID) (*models.Subscription, error)
	Upsert(ctx context.Context, subscription *models.Subscription) error
}

// AppSettingRepositoryInterface defines the interface for global key/value settings
type AppSettingRepositoryInterface interface {
	Get(ctx context.Context, key string) (*models.AppSetting, error)
	Set(ctx context.Context, key, value string) error
}

// DocumentStatusUpdate carries the optional columns written with a status transition
type DocumentStatusUpdate struct {
	RemoteIndexRef *string
	FailureReason  string
}

// DocumentRepositoryInterface defines the interface for document repository operations.
// Every read and delete is scoped by organization.
type DocumentRepositoryInterface interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByIDForOrganization(ctx context.Context, id, orgID uuid.UUID) (*models.Document, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, search string, limit, offset int) ([]models.Document, int64, error)
	ListReadyByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Document, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.DocumentStatus, update DocumentStatusUpdate) (bool, error)
	FailStaleSyncs(ctx context.Context, cutoff time.Time, reason string) (int64, error)
	DeleteForOrganization(ctx context.Context, id, orgID uuid.UUID) (bool, error)
}

// ChatSessionRepositoryInterface defines the interface for chat session repository operations
type ChatSessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.ChatSession) error
	GetByIDForOrganization(ctx context.Context, id, orgID uuid.UUID) (*models.ChatSession, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.ChatSession, int64, error)
	UpdateTitle(ctx context.Context, id, orgID uuid.UUID, title string) (bool, error)
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteForOrganization(ctx context.Context, id, orgID uuid.UUID) (bool, error)
}

// ChatMessageRepositoryInterface defines the interface for chat message repository operations
type ChatMessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error)
}

var (
	_ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)
	_ MembershipRepositoryInterface   = (*MembershipRepository)(nil)
	_ SubscriptionRepositoryInterface = (*SubscriptionRepository)(nil)
	_ AppSettingRepositoryInterface   = (*AppSettingRepository)(nil)
	_ DocumentRepositoryInterface     = (*DocumentRepository)(nil)
	_ ChatSessionRepositoryInterface  = (*ChatSessionRepository)(nil)
	_ ChatMessageRepositoryInterface  = (*ChatMessageRepository)(nil)
)
