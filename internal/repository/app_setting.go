package repository

import (
	"context"
	"time"

	"knowledge-base-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppSettingRepository handles global key/value settings
type AppSettingRepository struct {
	db *gorm.DB
}

// NewAppSettingRepository creates a new settings repository
func NewAppSettingRepository(db *gorm.DB) *AppSettingRepository {
	return &AppSettingRepository{db: db}
}

// Get retrieves a setting by key
func (r *AppSettingRepository) Get(ctx context.Context, key string) (*models.AppSetting, error) {
	var setting models.AppSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set creates or replaces a setting
func (r *AppSettingRepository) Set(ctx context.Context, key, value string) error {
	setting := &models.AppSetting{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}
