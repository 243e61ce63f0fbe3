package models

import "time"

// Well-known setting keys
const (
	SettingAIProviderAPIKey = "ai_provider_api_key"
)

// AppSetting is a global key/value entry for external credentials
type AppSetting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:100"`
	Value     string    `json:"-" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for AppSetting
func (AppSetting) TableName() string {
	return "app_settings"
}
