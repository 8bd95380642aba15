package config

import "time"

// Refresh timing. The default matches the 50ms the display was designed
// around; anything between the bounds is accepted from config.
const (
	DefaultTickInterval = 50 * time.Millisecond
	MinTickInterval     = 30 * time.Millisecond
	MaxTickInterval     = time.Second
)

// Star field.
const (
	StarCount       = 50
	TwinkleFraction = 8 // one in N stars changes brightness per frame
)

// Background dimming, mirroring a 0-255 alpha slider.
const (
	DimMin     = 0
	DimMax     = 255
	DimStep    = 15
	DefaultDim = 140
)

// Database/application settings.
const (
	AppName    = "nekotoki"
	DBFileName = "nekotoki.db"
)

// Preference keys in the settings table.
const (
	PrefTheme        = "theme"
	PrefBackground   = "background"
	PrefDimLevel     = "dim_level"
	PrefStarsEnabled = "stars_enabled"
	PrefTickInterval = "tick_interval_ms"
)
