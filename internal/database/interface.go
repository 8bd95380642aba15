package database

import (
	"context"

	"github.com/yumegusa/nekotoki/internal/models"
)

// SettingsRepository defines preference persistence operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	LoadPreferences(ctx context.Context, defaults models.Preferences) models.Preferences
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}

// BackgroundRepository defines background-preset operations.
type BackgroundRepository interface {
	GetBackgrounds(ctx context.Context) ([]models.BackgroundPreset, error)
	GetBackgroundByName(ctx context.Context, name string) (models.BackgroundPreset, error)
	AddBackground(ctx context.Context, name, color, starColor string) (int64, error)
	DeleteBackground(ctx context.Context, id int64) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_repository_test.go -package=tui
type Repository interface {
	SettingsRepository
	BackgroundRepository
}

var _ Repository = (*Database)(nil)
