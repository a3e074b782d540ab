package services

import (
	"context"
	"encoding/json"
	"errors"

	"restaurant-site-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTheme is returned when no theme row has ever been stored.
const DefaultTheme = `{"primary":"#d4af37","bg":"#0f0f0f","occasion":"none"}`

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetTheme returns the stored theme object, or the hard-coded default when
// no row exists yet.
func (s *SettingsService) GetTheme(ctx context.Context) (json.RawMessage, error) {
	var setting models.Setting
	err := s.db.WithContext(ctx).First(&setting, "key = ?", models.ThemeKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return json.RawMessage(DefaultTheme), nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(setting.Value), nil
}

// SetTheme upserts the singleton theme row in one statement. The new value
// fully replaces the old one; there is no merge.
func (s *SettingsService) SetTheme(ctx context.Context, value json.RawMessage) error {
	setting := models.Setting{Key: models.ThemeKey, Value: string(value)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
