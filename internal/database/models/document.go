package models

import (
	"github.com/google/uuid"
)

// Document is the local metadata record of a file pushed to the external index
type Document struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;index:idx_documents_org_status" validate:"required"`
	DisplayName    string         `json:"display_name" gorm:"not null;size:255" validate:"required,max=255"`
	MimeType       string         `json:"mime_type" gorm:"not null;size:100" validate:"required,max=100"`
	SizeBytes      int64          `json:"size_bytes" gorm:"not null" validate:"gte=0"`
	RemoteIndexRef *string        `json:"remote_index_ref,omitempty" gorm:"size:255"`
	Status         DocumentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index:idx_documents_org_status"`
	FailureReason  string         `json:"failure_reason,omitempty" gorm:"type:text"`

	// Relationships
	Organization Organization `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
