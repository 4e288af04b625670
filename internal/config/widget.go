package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evyataryagoni/citysuggest/internal/models"
)

// widgetFile is the YAML layout of the widget options file:
//
//	autocomplete:
//	  min_length: 2
//	  position:
//	    my: left top
//	    at: left bottom
//	    collision: none
type widgetFile struct {
	Autocomplete models.BindOptions `yaml:"autocomplete"`
}

// LoadWidgetOptions reads bind options from a YAML file.
// An empty path returns the defaults. Keys missing from the file keep their default value.
func LoadWidgetOptions(path string) (models.BindOptions, error) {
	if path == "" {
		return models.DefaultBindOptions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.DefaultBindOptions(), fmt.Errorf("failed to read widget config: %w", err)
	}

	file := widgetFile{Autocomplete: models.DefaultBindOptions()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return models.DefaultBindOptions(), fmt.Errorf("failed to parse widget config: %w", err)
	}

	return file.Autocomplete, nil
}
