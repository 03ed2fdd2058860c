package figchart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// LoadSettings reads a YAML or JSON settings file over the defaults. Keys
// absent from the file keep their default values; unknown keys are errors.
func LoadSettings(path string) (models.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Settings{}, fmt.Errorf("settings %q: %w", path, ErrFileNotFound)
		}
		return models.Settings{}, fmt.Errorf("settings %q: %w", path, err)
	}
	s, err := DecodeSettings(data)
	if err != nil {
		return models.Settings{}, fmt.Errorf("settings %q: %w", path, err)
	}
	return s, nil
}

// DecodeSettings decodes YAML or JSON settings over the defaults.
func DecodeSettings(data []byte) (models.Settings, error) {
	s := models.DefaultSettings()
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return models.Settings{}, err
	}
	if s.ChartType != "" {
		if _, err := models.ParseChartType(string(s.ChartType)); err != nil {
			return models.Settings{}, err
		}
	}
	return s, nil
}

// WriteSettings writes s as YAML.
func WriteSettings(w io.Writer, s models.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
