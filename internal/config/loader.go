package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of environment overrides, e.g. FIGCHART_SERVER_ADDR.
const envPrefix = "FIGCHART"

// DefaultConfigName is the file looked up in the working directory when no
// path is given.
const DefaultConfigName = "figchart.yaml"

// keys lists every configuration key so environment overrides apply even
// when the file does not mention them.
var keys = []string{
	"log.level",
	"log.format",
	"log.output_paths",
	"log.error_output_paths",
	"server.addr",
	"server.allowed_origins",
	"server.max_body_bytes",
	"chart.type",
	"chart.color_scheme",
	"chart.font_family",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return v
}

// Load builds the configuration from, in increasing precedence: defaults,
// the YAML file, a .env file in the working directory, and FIGCHART_*
// environment variables. An empty configPath reads ./figchart.yaml when it
// exists and otherwise uses no file.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env: %w", err)
	}

	v := newViper()
	switch {
	case configPath != "":
		v.SetConfigFile(configPath)
	case fileExists(DefaultConfigName):
		v.SetConfigFile(DefaultConfigName)
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", v.ConfigFileUsed(), err)
		}
	}
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
