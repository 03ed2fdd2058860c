package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "custom.yaml", `
log:
  level: debug
  format: json
server:
  addr: "127.0.0.1:9000"
  allowed_origins: ["http://localhost:5173"]
chart:
  type: bar
  color_scheme: vibrant
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "bar", cfg.Chart.Type)
	assert.Equal(t, "vibrant", cfg.Chart.ColorScheme)
	assert.Equal(t, models.DefaultFontFamily, cfg.Chart.FontFamily)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, DefaultConfigName, "chart:\n  type: pie\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pie", cfg.Chart.Type)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "c.yaml", "server:\n  addr: \":7000\"\n")
	t.Setenv("FIGCHART_SERVER_ADDR", ":7100")
	t.Setenv("FIGCHART_CHART_FONT_FAMILY", "Helvetica")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7100", cfg.Server.Addr)
	assert.Equal(t, "Helvetica", cfg.Chart.FontFamily)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "FIGCHART_CHART_COLOR_SCHEME=pastel\n")
	// godotenv sets the variable for the whole process.
	t.Setenv("FIGCHART_CHART_COLOR_SCHEME", "")
	require.NoError(t, os.Unsetenv("FIGCHART_CHART_COLOR_SCHEME"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pastel", cfg.Chart.ColorScheme)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "chart:\n  type: radar\n")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "chart.type")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"negative body", func(c *Config) { c.Server.MaxBodyBytes = -1 }, "max_body_bytes"},
		{"unknown scheme", func(c *Config) { c.Chart.ColorScheme = "neon" }, "color_scheme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestChartConfig_Settings(t *testing.T) {
	s := ChartConfig{Type: "scatter", ColorScheme: "pastel"}.Settings()
	assert.Equal(t, models.ChartScatter, s.ChartType)
	assert.Equal(t, "pastel", s.ColorScheme)
	assert.Equal(t, models.DefaultFontFamily, s.FontFamily)
}
