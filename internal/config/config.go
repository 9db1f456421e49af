// Package config resolves runtime settings from flags and RGBCONV_* environment
// variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/ironsheep/rgbconv/internal/imaging"
	"github.com/ironsheep/rgbconv/internal/logger"
)

// EnvPrefix is prepended to every environment variable, e.g. RGBCONV_DEBUG.
const EnvPrefix = "RGBCONV"

// Keys understood by Load.
const (
	KeyDebug       = "debug"
	KeyLogFormat   = "log_format"
	KeyJPEGQuality = "jpeg_quality"
)

// Config holds the settings shared by every command.
type Config struct {
	Debug       bool
	LogFormat   string
	JPEGQuality int
}

// SetDefaults registers default values and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFormat, logger.FormatText)
	v.SetDefault(KeyJPEGQuality, imaging.DefaultJPEGQuality)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Debug:       v.GetBool(KeyDebug),
		LogFormat:   v.GetString(KeyLogFormat),
		JPEGQuality: v.GetInt(KeyJPEGQuality),
	}

	if cfg.LogFormat != logger.FormatText && cfg.LogFormat != logger.FormatJSON {
		return Config{}, fmt.Errorf("invalid log format %q: want %s or %s",
			cfg.LogFormat, logger.FormatText, logger.FormatJSON)
	}
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return Config{}, fmt.Errorf("invalid jpeg quality %d: want 1-100", cfg.JPEGQuality)
	}

	return cfg, nil
}
