package models

// Organization is the tenant boundary; documents, chat sessions and the
// subscription all hang off exactly one organization.
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`

	// Relationships
	Memberships  []Membership  `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Documents    []Document    `json:"documents,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ChatSessions []ChatSession `json:"chat_sessions,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Subscription *Subscription `json:"subscription,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
