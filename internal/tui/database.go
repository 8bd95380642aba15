package tui

import (
	"context"

	"github.com/yumegusa/nekotoki/internal/models"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	LoadPreferences(ctx context.Context, defaults models.Preferences) models.Preferences
	SavePreferences(ctx context.Context, prefs models.Preferences) error

	GetBackgrounds(ctx context.Context) ([]models.BackgroundPreset, error)
	GetBackgroundByName(ctx context.Context, name string) (models.BackgroundPreset, error)
	AddBackground(ctx context.Context, name, color, starColor string) (int64, error)
	DeleteBackground(ctx context.Context, id int64) error
}
