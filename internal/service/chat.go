package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"knowledge-base-backend/internal/database/models"
	apperrors "knowledge-base-backend/internal/errors"
	"knowledge-base-backend/internal/logger"
	"knowledge-base-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultSessionTitle = "New chat"
	maxDerivedTitle     = 60
	maxSummaryPassages  = 3

	noContentReply   = "There is no indexed content for this organization yet. Upload documents and ask again once they are ready."
	unavailableReply = "Sorry, the knowledge index is unavailable right now, so this answer could not use your documents. Please try again shortly."
	noMatchReply     = "I could not find anything relevant to that question in your documents."
)

// ChatService handles chat sessions and retrieval-augmented turns
type ChatService struct {
	sessions  repository.ChatSessionRepositoryInterface
	messages  repository.ChatMessageRepositoryInterface
	retriever IndexSyncEngineInterface
	validator *validator.Validate
}

// NewChatService creates a new chat service
func NewChatService(sessions repository.ChatSessionRepositoryInterface, messages repository.ChatMessageRepositoryInterface, retriever IndexSyncEngineInterface, validator *validator.Validate) *ChatService {
	return &ChatService{
		sessions:  sessions,
		messages:  messages,
		retriever: retriever,
		validator: validator,
	}
}

// CreateSessionRequest represents the request to start a chat session
type CreateSessionRequest struct {
	Title          string `json:"title" validate:"max=200"`
	InitialMessage string `json:"initial_message" validate:"max=8000"`
}

// SendMessageRequest represents a user turn. DocumentIDs restricts retrieval.
type SendMessageRequest struct {
	Content     string      `json:"content" validate:"required,max=8000"`
	DocumentIDs []uuid.UUID `json:"document_ids,omitempty"`
}

// RenameSessionRequest represents the request to rename a session
type RenameSessionRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// ChatMessageResponse represents one stored message
type ChatMessageResponse struct {
	ID        uuid.UUID          `json:"id"`
	SessionID uuid.UUID          `json:"session_id"`
	Role      models.MessageRole `json:"role"`
	Content   string             `json:"content"`
	CreatedAt string             `json:"created_at"`
}

// ChatSessionResponse represents a session, with messages when requested
type ChatSessionResponse struct {
	ID             uuid.UUID             `json:"id"`
	OrganizationID uuid.UUID             `json:"organization_id"`
	Title          string                `json:"title"`
	Messages       []ChatMessageResponse `json:"messages,omitempty"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// ChatSessionListResponse represents a paginated list of sessions
type ChatSessionListResponse struct {
	Sessions   []ChatSessionResponse `json:"sessions"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// CreateSession starts a session and, when an initial message is given,
// answers it before returning
func (s *ChatService) CreateSession(ctx context.Context, orgID uuid.UUID, req *CreateSessionRequest) (*ChatSessionResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DeriveTitle(req.InitialMessage)
	}

	session := &models.ChatSession{
		OrganizationID: orgID,
		Title:          title,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	resp := toSessionResponse(session)
	if strings.TrimSpace(req.InitialMessage) == "" {
		return resp, nil
	}

	messages, err := s.turn(ctx, session, req.InitialMessage, nil)
	if err != nil {
		return nil, err
	}
	resp.Messages = messages
	resp.UpdatedAt = session.UpdatedAt.Format(time.RFC3339)
	return resp, nil
}

// SendMessage appends a user message and the assistant's answer
func (s *ChatService) SendMessage(ctx context.Context, sessionID, orgID uuid.UUID, req *SendMessageRequest) ([]ChatMessageResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError("content", "message is empty")
	}

	session, err := s.getSession(ctx, sessionID, orgID)
	if err != nil {
		return nil, err
	}
	return s.turn(ctx, session, req.Content, req.DocumentIDs)
}

func (s *ChatService) turn(ctx context.Context, session *models.ChatSession, content string, scope []uuid.UUID) ([]ChatMessageResponse, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"session_id":      session.ID,
		"organization_id": session.OrganizationID,
	})

	userMessage := &models.ChatMessage{
		SessionID: session.ID,
		Role:      models.MessageRoleUser,
		Content:   content,
	}
	if err := s.messages.Create(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	var answer string
	result, err := s.retriever.QueryIndex(ctx, session.OrganizationID, content, scope)
	switch {
	case apperrors.IsRemoteUnavailable(err):
		log.WithError(err).Warn("retrieval unavailable, sending degraded reply")
		answer = unavailableReply
	case err != nil:
		// the user message is already stored; the turn still gets a reply
		log.WithError(err).Error("retrieval failed, sending degraded reply")
		answer = unavailableReply
	default:
		answer = synthesizeAnswer(result)
	}

	assistantMessage := &models.ChatMessage{
		SessionID: session.ID,
		Role:      models.MessageRoleAssistant,
		Content:   answer,
	}
	if err := s.messages.Create(ctx, assistantMessage); err != nil {
		return nil, fmt.Errorf("failed to store reply: %w", err)
	}

	session.UpdatedAt = time.Now()
	if err := s.sessions.Touch(ctx, session.ID, session.UpdatedAt); err != nil {
		log.WithError(err).Warn("failed to bump session activity")
	}

	return []ChatMessageResponse{
		*toMessageResponse(userMessage),
		*toMessageResponse(assistantMessage),
	}, nil
}

// synthesizeAnswer turns a retrieval result into the assistant's reply
func synthesizeAnswer(result *RetrievalResult) string {
	if result.NoContent {
		return noContentReply
	}
	if answer := strings.TrimSpace(result.RawAnswer); answer != "" {
		return answer
	}
	if len(result.Passages) == 0 {
		return noMatchReply
	}

	var b strings.Builder
	b.WriteString("Here is what your documents say:\n")
	for i, passage := range result.Passages {
		if i == maxSummaryPassages {
			break
		}
		fmt.Fprintf(&b, "\n- %s (source: %s)", collapseWhitespace(passage.Content), passage.DocumentName)
	}
	return b.String()
}

// ListSessions returns a page of sessions, most recently active first
func (s *ChatService) ListSessions(ctx context.Context, orgID uuid.UUID, page, pageSize int) (*ChatSessionListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	sessions, total, err := s.sessions.ListByOrganization(ctx, orgID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	responses := make([]ChatSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *toSessionResponse(&sessions[i])
	}

	return &ChatSessionListResponse{
		Sessions:   responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// GetSession returns a session with its messages in order
func (s *ChatService) GetSession(ctx context.Context, sessionID, orgID uuid.UUID) (*ChatSessionResponse, error) {
	session, err := s.getSession(ctx, sessionID, orgID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	resp := toSessionResponse(session)
	resp.Messages = make([]ChatMessageResponse, len(messages))
	for i := range messages {
		resp.Messages[i] = *toMessageResponse(&messages[i])
	}
	return resp, nil
}

// RenameSession changes a session's title
func (s *ChatService) RenameSession(ctx context.Context, sessionID, orgID uuid.UUID, req *RenameSessionRequest) (*ChatSessionResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	updated, err := s.sessions.UpdateTitle(ctx, sessionID, orgID, req.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to rename chat session: %w", err)
	}
	if !updated {
		return nil, apperrors.ErrChatSessionNotFound
	}

	session, err := s.getSession(ctx, sessionID, orgID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// DeleteSession removes a session and its messages
func (s *ChatService) DeleteSession(ctx context.Context, sessionID, orgID uuid.UUID) error {
	deleted, err := s.sessions.DeleteForOrganization(ctx, sessionID, orgID)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if !deleted {
		return apperrors.ErrChatSessionNotFound
	}
	return nil
}

func (s *ChatService) getSession(ctx context.Context, sessionID, orgID uuid.UUID) (*models.ChatSession, error) {
	session, err := s.sessions.GetByIDForOrganization(ctx, sessionID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChatSessionNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return session, nil
}

// DeriveTitle builds a session title from the first message
func DeriveTitle(message string) string {
	title := collapseWhitespace(message)
	if title == "" {
		return defaultSessionTitle
	}
	if utf8.RuneCountInString(title) <= maxDerivedTitle {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:maxDerivedTitle])) + "…"
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func toSessionResponse(session *models.ChatSession) *ChatSessionResponse {
	return &ChatSessionResponse{
		ID:             session.ID,
		OrganizationID: session.OrganizationID,
		Title:          session.Title,
		CreatedAt:      session.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      session.UpdatedAt.Format(time.RFC3339),
	}
}

func toMessageResponse(message *models.ChatMessage) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        message.ID,
		SessionID: message.SessionID,
		Role:      message.Role,
		Content:   message.Content,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	}
}
