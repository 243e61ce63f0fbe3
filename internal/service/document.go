package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"strings"
	"time"

	"knowledge-base-backend/internal/blob"
	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/logger"
	"knowledge-base-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedMimeTypes are the formats the index can extract text from
var allowedMimeTypes = map[string]bool{
	"text/plain":       true,
	"text/markdown":    true,
	"text/csv":         true,
	"text/html":        true,
	"application/json": true,
}

// DocumentService handles the document metadata lifecycle
type DocumentService struct {
	docs           repository.DocumentRepositoryInterface
	sync           IndexSyncEngineInterface
	blobs          blob.Store
	validator      *validator.Validate
	maxUploadBytes int64
}

// NewDocumentService creates a new document service
func NewDocumentService(docs repository.DocumentRepositoryInterface, sync IndexSyncEngineInterface, blobs blob.Store, validator *validator.Validate, maxUploadBytes int64) *DocumentService {
	if blobs == nil {
		blobs = blob.NopStore{}
	}
	return &DocumentService{
		docs:           docs,
		sync:           sync,
		blobs:          blobs,
		validator:      validator,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateDocumentRequest represents an upload. Content is base64 in JSON bodies.
type CreateDocumentRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=255"`
	MimeType    string `json:"mime_type" validate:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" validate:"gte=0"`
	Content     []byte `json:"content" validate:"required"`
}

// DocumentResponse represents the response for document operations
type DocumentResponse struct {
	ID             uuid.UUID             `json:"id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	DisplayName    string                `json:"display_name"`
	MimeType       string                `json:"mime_type"`
	SizeBytes      int64                 `json:"size_bytes"`
	Status         models.DocumentStatus `json:"status"`
	RemoteIndexRef *string               `json:"remote_index_ref,omitempty"`
	FailureReason  string                `json:"failure_reason,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// DocumentListResponse represents a paginated list of documents
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// Create validates and stores a new pending document, then hands it to the
// index sync engine without waiting for the outcome
func (s *DocumentService) Create(ctx context.Context, orgID uuid.UUID, req *CreateDocumentRequest) (*DocumentResponse, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	mimeType, err := normalizeMimeType(req.MimeType)
	if err != nil {
		return nil, err
	}
	if len(req.Content) == 0 {
		return nil, apperrors.NewValidationError("content", "document is empty")
	}
	if req.SizeBytes != int64(len(req.Content)) {
		return nil, apperrors.NewValidationError("size_bytes", fmt.Sprintf("declared %d bytes but received %d", req.SizeBytes, len(req.Content)))
	}
	if req.SizeBytes > s.maxUploadBytes {
		return nil, apperrors.NewValidationError("size_bytes", fmt.Sprintf("exceeds the maximum of %d bytes", s.maxUploadBytes))
	}

	doc := &models.Document{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		DisplayName:    req.DisplayName,
		MimeType:       mimeType,
		SizeBytes:      req.SizeBytes,
		Status:         models.DocumentStatusPending,
	}

	if err := s.blobs.Put(ctx, blob.DocumentKey(orgID, doc.ID), mimeType, req.Content); err != nil {
		return nil, fmt.Errorf("failed to archive document: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"document_id":     doc.ID,
		"organization_id": orgID,
		"size_bytes":      doc.SizeBytes,
	})

	if err := s.docs.Create(ctx, doc); err != nil {
		if blobErr := s.blobs.Delete(ctx, blob.DocumentKey(orgID, doc.ID)); blobErr != nil {
			log.WithError(blobErr).Warn("failed to remove archived bytes of rejected document")
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	if err := s.sync.SyncDocument(doc, req.Content); err != nil {
		log.WithError(err).Warn("document sync was not started")
	} else {
		log.Info("document accepted for indexing")
	}

	return toDocumentResponse(doc), nil
}

// List returns a page of the organization's documents, optionally filtered by name
func (s *DocumentService) List(ctx context.Context, orgID uuid.UUID, search string, page, pageSize int) (*DocumentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	docs, total, err := s.docs.ListByOrganization(ctx, orgID, search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *toDocumentResponse(&docs[i])
	}

	return &DocumentListResponse{
		Documents:  responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Get retrieves one document of the organization
func (s *DocumentService) Get(ctx context.Context, id, orgID uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.getDocument(ctx, id, orgID)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// Delete stops any sync, removes the remote and archived copies best-effort,
// then deletes the local record
func (s *DocumentService) Delete(ctx context.Context, id, orgID uuid.UUID) error {
	doc, err := s.getDocument(ctx, id, orgID)
	if err != nil {
		return err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"document_id":     doc.ID,
		"organization_id": orgID,
	})

	s.sync.Cancel(doc.ID)

	ref := RemoteRef(orgID, doc.ID)
	if doc.RemoteIndexRef != nil && *doc.RemoteIndexRef != "" {
		ref = *doc.RemoteIndexRef
	}
	if err := s.sync.DeleteRemote(ctx, ref); err != nil {
		log.WithError(err).Warn("remote index deletion failed")
	}
	if err := s.blobs.Delete(ctx, blob.DocumentKey(orgID, doc.ID)); err != nil {
		log.WithError(err).Warn("archived document deletion failed")
	}

	deleted, err := s.docs.DeleteForOrganization(ctx, doc.ID, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if !deleted {
		return apperrors.ErrDocumentNotFound
	}

	log.Info("document deleted")
	return nil
}

// ListReady returns the organization's documents that can be queried
func (s *DocumentService) ListReady(ctx context.Context, orgID uuid.UUID) ([]DocumentResponse, error) {
	docs, err := s.docs.ListReadyByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready documents: %w", err)
	}
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *toDocumentResponse(&docs[i])
	}
	return responses, nil
}

func (s *DocumentService) getDocument(ctx context.Context, id, orgID uuid.UUID) (*models.Document, error) {
	doc, err := s.docs.GetByIDForOrganization(ctx, id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

func normalizeMimeType(raw string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return "", apperrors.NewValidationError("mime_type", "malformed media type")
	}
	if !allowedMimeTypes[mediaType] {
		return "", apperrors.NewValidationError("mime_type", fmt.Sprintf("%s is not supported", mediaType))
	}
	return mediaType, nil
}

func toDocumentResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:             doc.ID,
		OrganizationID: doc.OrganizationID,
		DisplayName:    doc.DisplayName,
		MimeType:       doc.MimeType,
		SizeBytes:      doc.SizeBytes,
		Status:         doc.Status,
		RemoteIndexRef: doc.RemoteIndexRef,
		FailureReason:  doc.FailureReason,
		CreatedAt:      doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      doc.UpdatedAt.Format(time.RFC3339),
	}
}
