package config

import "github.com/ukaji3/figchart-go/pkg/figchart/models"

const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultServerAddr   = ":8080"
	DefaultMaxBodyBytes = 32 << 20
)

// DefaultAllowedOrigins allows any origin.
var DefaultAllowedOrigins = []string{"*"}

// ApplyDefaults fills unset fields of cfg.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if cfg.Chart.Type == "" {
		cfg.Chart.Type = string(models.ChartLine)
	}
	if cfg.Chart.ColorScheme == "" {
		cfg.Chart.ColorScheme = models.DefaultColorScheme
	}
	if cfg.Chart.FontFamily == "" {
		cfg.Chart.FontFamily = models.DefaultFontFamily
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
