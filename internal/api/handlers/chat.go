package handlers

import (
	"net/http"
	"strings"

	"knowledge-base-backend/internal/database/models"
	"knowledge-base-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles HTTP requests for chat sessions
type ChatHandler struct {
	service service.ChatServiceInterface
	access  *AccessControl
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service service.ChatServiceInterface, access *AccessControl) *ChatHandler {
	return &ChatHandler{service: service, access: access}
}

// ListSessions handles GET /api/v1/organizations/:orgId/chat/sessions
// @Summary List chat sessions, most recently active first
// @Tags chat
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {object} service.ChatSessionListResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/chat/sessions [get]
func (h *ChatHandler) ListSessions(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityChatManage)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	resp, err := h.service.ListSessions(c.Request.Context(), orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list chat sessions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateSession handles POST /api/v1/organizations/:orgId/chat/sessions
// @Summary Start a chat session, optionally with a first question
// @Tags chat
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param session body service.CreateSessionRequest true "Session data"
// @Success 201 {object} service.ChatSessionResponse
// @Failure 402 {object} CapabilityErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/chat/sessions [post]
func (h *ChatHandler) CreateSession(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityChatManage)
	if !ok {
		return
	}

	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if strings.TrimSpace(req.InitialMessage) != "" && !h.access.require(c, orgID, service.CapabilityChatSend) {
		return
	}

	session, err := h.service.CreateSession(c.Request.Context(), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create chat session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/v1/organizations/:orgId/chat/sessions/:id
// @Summary Get a chat session with its messages
// @Tags chat
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.ChatSessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityChatManage)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "chat session")
	if !ok {
		return
	}

	session, err := h.service.GetSession(c.Request.Context(), id, orgID)
	if err != nil {
		respondError(c, err, "Failed to get chat session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// RenameSession handles PATCH /api/v1/organizations/:orgId/chat/sessions/:id
// @Summary Rename a chat session
// @Tags chat
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Param session body service.RenameSessionRequest true "New title"
// @Success 200 {object} service.ChatSessionResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/chat/sessions/{id} [patch]
func (h *ChatHandler) RenameSession(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityChatManage)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "chat session")
	if !ok {
		return
	}

	var req service.RenameSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}

	session, err := h.service.RenameSession(c.Request.Context(), id, orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to rename chat session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /api/v1/organizations/:orgId/chat/sessions/:id
// @Summary Delete a chat session and its messages
// @Tags chat
// @Param orgId path string true "Organization ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Success 204
// @Security BearerAuth
// @Router /organizations/{orgId}/chat/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityChatManage)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "chat session")
	if !ok {
		return
	}

	if err := h.service.DeleteSession(c.Request.Context(), id, orgID); err != nil {
		respondError(c, err, "Failed to delete chat session")
		return
	}

	c.Status(http.StatusNoContent)
}

// SendMessage handles POST /api/v1/organizations/:orgId/chat/sessions/:id/messages
// @Summary Ask a question in a session
// @Description Restricting retrieval with document_ids requires the scoped retrieval capability.
// @Tags chat
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param id path string true "Session ID (UUID)"
// @Param message body service.SendMessageRequest true "Message"
// @Success 201 {array} service.ChatMessageResponse
// @Failure 402 {object} CapabilityErrorResponse
// @Security BearerAuth
// @Router /organizations/{orgId}/chat/sessions/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	orgID, _, ok := h.access.authorize(c, models.MemberRoleMember, service.CapabilityChatSend)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id", "chat session")
	if !ok {
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return
	}
	if len(req.DocumentIDs) > 0 && !h.access.require(c, orgID, service.CapabilityChatScopedRetrieval) {
		return
	}

	messages, err := h.service.SendMessage(c.Request.Context(), id, orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, messages)
}
