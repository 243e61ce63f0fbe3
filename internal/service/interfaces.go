package service

import (
	"context"

	"knowledge-base-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenancyGuardInterface defines the interface for membership checks
type TenancyGuardInterface interface {
	Authorize(ctx context.Context, userID string, orgID uuid.UUID, minimum models.MemberRole) (*models.Membership, error)
}

// FeatureGateInterface defines the interface for capability checks
type FeatureGateInterface interface {
	Require(ctx context.Context, orgID uuid.UUID, capability Capability) error
	Capabilities(ctx context.Context, orgID uuid.UUID) (*CapabilitiesResponse, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, userID string, req *CreateOrganizationRequest) (*MembershipResponse, error)
	AddMember(ctx context.Context, orgID uuid.UUID, actor *models.Membership, req *AddMemberRequest) (*MembershipResponse, error)
	ListMemberships(ctx context.Context, userID string) ([]MembershipResponse, error)
}

// DocumentServiceInterface defines the interface for document service
type DocumentServiceInterface interface {
	Create(ctx context.Context, orgID uuid.UUID, req *CreateDocumentRequest) (*DocumentResponse, error)
	List(ctx context.Context, orgID uuid.UUID, search string, page, pageSize int) (*DocumentListResponse, error)
	Get(ctx context.Context, id, orgID uuid.UUID) (*DocumentResponse, error)
	Delete(ctx context.Context, id, orgID uuid.UUID) error
	ListReady(ctx context.Context, orgID uuid.UUID) ([]DocumentResponse, error)
}

// IndexSyncEngineInterface defines the interface for the external index hand-off
type IndexSyncEngineInterface interface {
	SyncDocument(doc *models.Document, content []byte) error
	QueryIndex(ctx context.Context, orgID uuid.UUID, query string, scope []uuid.UUID) (*RetrievalResult, error)
	DeleteRemote(ctx context.Context, ref string) error
	Cancel(documentID uuid.UUID)
	Shutdown(ctx context.Context) error
	Health(ctx context.Context) error
}

// ChatServiceInterface defines the interface for chat service
type ChatServiceInterface interface {
	CreateSession(ctx context.Context, orgID uuid.UUID, req *CreateSessionRequest) (*ChatSessionResponse, error)
	SendMessage(ctx context.Context, sessionID, orgID uuid.UUID, req *SendMessageRequest) ([]ChatMessageResponse, error)
	ListSessions(ctx context.Context, orgID uuid.UUID, page, pageSize int) (*ChatSessionListResponse, error)
	GetSession(ctx context.Context, sessionID, orgID uuid.UUID) (*ChatSessionResponse, error)
	RenameSession(ctx context.Context, sessionID, orgID uuid.UUID, req *RenameSessionRequest) (*ChatSessionResponse, error)
	DeleteSession(ctx context.Context, sessionID, orgID uuid.UUID) error
}

var (
	_ TenancyGuardInterface        = (*TenancyGuard)(nil)
	_ FeatureGateInterface         = (*FeatureGate)(nil)
	_ OrganizationServiceInterface = (*OrganizationService)(nil)
	_ DocumentServiceInterface     = (*DocumentService)(nil)
	_ IndexSyncEngineInterface     = (*IndexSyncEngine)(nil)
	_ ChatServiceInterface         = (*ChatService)(nil)
)
