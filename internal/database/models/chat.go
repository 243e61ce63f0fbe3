package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatSession is an organization-scoped conversation
type ChatSession struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title          string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`

	// Relationships
	Organization Organization  `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Messages     []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ChatSession
func (ChatSession) TableName() string {
	return "chat_sessions"
}

// ChatMessage is immutable once stored; Sequence preserves insertion order
type ChatMessage struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID uuid.UUID   `json:"session_id" gorm:"type:uuid;not null;index:idx_chat_messages_session_seq,priority:1"`
	Sequence  int64       `json:"-" gorm:"autoIncrement;not null;index:idx_chat_messages_session_seq,priority:2"`
	Role      MessageRole `json:"role" gorm:"type:varchar(20);not null"`
	Content   string      `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time   `json:"created_at"`
}

// TableName returns the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate sets the UUID if not already set
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
