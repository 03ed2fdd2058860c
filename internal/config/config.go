// Package config loads the figchart application configuration.
package config

import (
	"fmt"

	"github.com/ukaji3/figchart-go/internal/logging"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/theme"
)

// Config is the root configuration.
type Config struct {
	Log    logging.LogConfig `mapstructure:"log"`
	Server ServerConfig      `mapstructure:"server"`
	Chart  ChartConfig       `mapstructure:"chart"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// ChartConfig holds defaults applied to chart settings that a settings file
// or request leaves unset.
type ChartConfig struct {
	Type        string `mapstructure:"type"`
	ColorScheme string `mapstructure:"color_scheme"`
	FontFamily  string `mapstructure:"font_family"`
}

// Settings returns the default chart settings with the configured overrides.
func (c ChartConfig) Settings() models.Settings {
	s := models.DefaultSettings()
	if c.Type != "" {
		s.ChartType = models.ChartType(c.Type)
	}
	if c.ColorScheme != "" {
		s.ColorScheme = c.ColorScheme
	}
	if c.FontFamily != "" {
		s.FontFamily = c.FontFamily
	}
	return s
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected console|json", c.Log.Format)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Server.MaxBodyBytes < 1 {
		return fmt.Errorf("config: server.max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}

	if c.Chart.Type != "" {
		if _, err := models.ParseChartType(c.Chart.Type); err != nil {
			return fmt.Errorf("config: chart.type: %w", err)
		}
	}
	if c.Chart.ColorScheme != "" {
		if _, ok := theme.Palettes[c.Chart.ColorScheme]; !ok {
			return fmt.Errorf("config: chart.color_scheme %q is unknown; expected one of %v", c.Chart.ColorScheme, theme.Keys())
		}
	}
	return nil
}
