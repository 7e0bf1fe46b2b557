package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkpress/inkpress-admin/pkg/models"
)

// ReadSettings loads config.yaml from dir, falling back to defaults for a
// missing file and for unset fields
func ReadSettings(dir string) (*models.Settings, error) {
	settings := models.DefaultSettings()
	if err := readYAML(filepath.Join(dir, SettingsFile), settings); err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

// WriteSettings saves settings to dir/config.yaml
func WriteSettings(dir string, settings *models.Settings) error {
	if err := writeYAML(filepath.Join(dir, SettingsFile), settings); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
