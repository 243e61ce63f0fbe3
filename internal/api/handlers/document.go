package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadBodySlack covers multipart boundaries, form fields and JSON framing
const uploadBodySlack = 64 << 10

// DocumentHandler handles HTTP requests for documents
type DocumentHandler struct {
	service        service.DocumentServiceInterface
	access         *AccessControl
	maxUploadBytes int64
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service service.DocumentServiceInterface, access *AccessControl, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{service: service, access: access, maxUploadBytes: maxUploadBytes}
}

// ListDocuments handles GET /api/v1/organizations/:orgId/documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param search query string false "Filter by name"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DocumentListResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityDocumentsRead)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	resp, err := h.service.List(c.Request.Context(), orgID, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadDocument handles POST /api/v1/organizations/:orgId/documents (multipart)
// @Summary Upload a document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param file formData file true "Document"
// @Param display_name formData string false "Name shown in listings"
// @Param mime_type formData string false "Overrides the detected media type"
// @Success 202 {object} service.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} CapabilityErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleAdmin, service.CapabilityDocumentsUpload)
	if !ok {
		return
	}

	h.limitBody(c, h.maxUploadBytes)
	header, err := c.FormFile("file")
	if err != nil {
		if bodyTooLarge(err) {
			h.rejectTooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file field is required", Details: err.Error()})
		return
	}
	if header.Size > h.maxUploadBytes {
		h.rejectTooLarge(c)
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read upload", Details: err.Error()})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read upload", Details: err.Error()})
		return
	}

	displayName := strings.TrimSpace(c.PostForm("display_name"))
	if displayName == "" {
		displayName = filepath.Base(header.Filename)
	}

	req := &service.CreateDocumentRequest{
		DisplayName: displayName,
		MimeType:    detectMimeType(c.PostForm("mime_type"), header.Header.Get("Content-Type"), header.Filename),
		SizeBytes:   header.Size,
		Content:     content,
	}

	h.create(c, orgID, req)
}

// CreateDocument handles POST /api/v1/organizations/:orgId/documents/json
// @Summary Upload a document as JSON with base64 content
// @Tags documents
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param document body service.CreateDocumentRequest true "Document"
// @Success 202 {object} service.DocumentResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/documents/json [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleAdmin, service.CapabilityDocumentsUpload)
	if !ok {
		return
	}

	// base64 inflates the content by a third
	h.limitBody(c, h.maxUploadBytes/3*4+4)
	var req service.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if bodyTooLarge(err) {
			h.rejectTooLarge(c)
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	h.create(c, orgID, &req)
}

func (h *DocumentHandler) limitBody(c *gin.Context, contentBytes int64) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, contentBytes+uploadBodySlack)
}

func (h *DocumentHandler) rejectTooLarge(c *gin.Context) {
	respondError(c, apperrors.NewValidationError("size_bytes", fmt.Sprintf("exceeds the maximum of %d bytes", h.maxUploadBytes)), "Invalid upload")
}

func bodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

func (h *DocumentHandler) create(c *gin.Context, orgID uuid.UUID, req *service.CreateDocumentRequest) {
	doc, err := h.service.Create(c.Request.Context(), orgID, req)
	if err != nil {
		respondError(c, err, "Failed to create document")
		return
	}

	// indexing continues in the background
	c.JSON(http.StatusAccepted, doc)
}

// GetDocument handles GET /api/v1/organizations/:orgId/documents/:id
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityDocumentsRead)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	doc, err := h.service.Get(c.Request.Context(), id, orgID)
	if err != nil {
		respondError(c, err, "Failed to get document")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/v1/organizations/:orgId/documents/:id
// @Summary Delete a document
// @Tags documents
// @Param orgId path string true "Organization ID (UUID)"
// @Param id path string true "Document ID (UUID)"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleAdmin, service.CapabilityDocumentsDelete)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "document")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, orgID); err != nil {
		respondError(c, err, "Failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}

// detectMimeType prefers an explicit form value, then the part header, then the file extension
func detectMimeType(explicit, partHeader, filename string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	if partHeader != "" && !strings.HasPrefix(partHeader, "application/octet-stream") {
		return partHeader
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".md", ".markdown":
		return "text/markdown"
	case ".txt":
		return "text/plain"
	case ".csv":
		return "text/csv"
	default:
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}
	return partHeader
}
