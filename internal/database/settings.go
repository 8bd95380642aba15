package database

import (
	"context"
	"strconv"
	"time"

	"github.com/yumegusa/nekotoki/internal/config"
	"github.com/yumegusa/nekotoki/internal/models"
	"github.com/yumegusa/nekotoki/internal/util"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	if value != nil {
		return *value, true
	}
	return "", false
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", err)
}

// LoadPreferences assembles display preferences from the settings table,
// falling back to the given defaults for anything unset or unparsable.
func (d *Database) LoadPreferences(ctx context.Context, defaults models.Preferences) models.Preferences {
	prefs := defaults

	if v, ok := d.GetSetting(ctx, config.PrefTheme); ok {
		prefs.Theme = v
	}
	if v, ok := d.GetSetting(ctx, config.PrefBackground); ok {
		prefs.Background = v
	}
	if v, ok := d.GetSetting(ctx, config.PrefDimLevel); ok {
		if n, err := strconv.Atoi(v); err == nil {
			prefs.DimLevel = util.Clamp(n, config.DimMin, config.DimMax)
		}
	}
	if v, ok := d.GetSetting(ctx, config.PrefStarsEnabled); ok {
		if n, err := strconv.Atoi(v); err == nil {
			prefs.StarsEnabled = util.IntToBool(n)
		}
	}
	if v, ok := d.GetSetting(ctx, config.PrefTickInterval); ok {
		if n, err := strconv.Atoi(v); err == nil {
			iv := time.Duration(n) * time.Millisecond
			prefs.TickInterval = util.ClampDuration(iv, config.MinTickInterval, config.MaxTickInterval)
		}
	}
	return prefs
}

// SavePreferences writes all display preferences. Individual keys are also
// written piecemeal as the user changes them; this exists for tests and for
// the initial seed.
func (d *Database) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	pairs := map[string]string{
		config.PrefTheme:        prefs.Theme,
		config.PrefBackground:   prefs.Background,
		config.PrefDimLevel:     strconv.Itoa(prefs.DimLevel),
		config.PrefStarsEnabled: strconv.Itoa(util.BoolToInt(prefs.StarsEnabled)),
		config.PrefTickInterval: strconv.Itoa(int(prefs.TickInterval / time.Millisecond)),
	}
	for key, value := range pairs {
		if err := d.SetSetting(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
