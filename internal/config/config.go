// Package config holds compile-time constants and the file/env
// configuration surface. Runtime-mutable preferences (theme, background,
// dim level) live in the database instead; this file covers the settings
// that must be known before the database is open.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/yumegusa/nekotoki/internal/util"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Display  DisplayConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// DisplayConfig holds presentation defaults, used until the database
// provides persisted preferences.
type DisplayConfig struct {
	TickIntervalMS int `mapstructure:"tick_interval_ms"`
	Theme          string
	Stars          bool
}

// TickInterval returns the configured refresh interval clamped to the
// supported range.
func (d DisplayConfig) TickInterval() time.Duration {
	iv := time.Duration(d.TickIntervalMS) * time.Millisecond
	return util.ClampDuration(iv, MinTickInterval, MaxTickInterval)
}

// Load reads configuration from file and env. Env var overrides use prefix
// NEKOTOKI_, e.g. NEKOTOKI_DISPLAY_TICK_INTERVAL_MS=100.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(util.DataDir(AppName), DBFileName))
	v.SetDefault("display.tick_interval_ms", int(DefaultTickInterval/time.Millisecond))
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.stars", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NEKOTOKI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(util.ConfigDir(AppName))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NEKOTOKI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed.
func Save(cfg Config) error {
	path := os.Getenv("NEKOTOKI_CONFIG")
	if path == "" {
		path = filepath.Join(util.ConfigDir(AppName), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("display.tick_interval_ms", cfg.Display.TickIntervalMS)
	v.Set("display.theme", cfg.Display.Theme)
	v.Set("display.stars", cfg.Display.Stars)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
