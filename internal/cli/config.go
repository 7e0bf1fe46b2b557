package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/inkpress/inkpress-admin/pkg/files"
	"github.com/inkpress/inkpress-admin/pkg/models"
)

const (
	configName = "config"
	configType = "yaml"

	// EnvPrefix prefixes environment overrides, e.g. INKPRESS_UI_SHOW_HELP
	EnvPrefix = "INKPRESS"

	KeyDataDir             = "data_dir"
	KeyLogFile             = "log_file"
	KeyMenuPosition        = "ui.menu_position"
	KeyManuscriptSort      = "ui.manuscript_sort"
	KeyManuscriptDirection = "ui.manuscript_direction"
	KeyShowHelp            = "ui.show_help"
)

// LoadConfig resolves settings from defaults, config.yaml and INKPRESS_*
// variables. An explicit configPath must exist; otherwise config.yaml is
// looked up in the data directory and may be missing. A non-empty
// dataDir overrides every other source.
func LoadConfig(configPath, dataDir string) (*models.Settings, error) {
	defaults := models.DefaultSettings()

	v := viper.New()
	v.SetDefault(KeyDataDir, defaults.DataDir)
	v.SetDefault(KeyLogFile, defaults.LogFile)
	v.SetDefault(KeyMenuPosition, defaults.UI.MenuPosition)
	v.SetDefault(KeyManuscriptSort, defaults.UI.ManuscriptSort)
	v.SetDefault(KeyManuscriptDirection, defaults.UI.ManuscriptDirection)
	v.SetDefault(KeyShowHelp, defaults.UI.ShowHelp)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType(configType)
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		dir := dataDir
		if dir == "" {
			dir = v.GetString(KeyDataDir)
		}
		v.SetConfigName(configName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if dataDir != "" {
		v.Set(KeyDataDir, dataDir)
	}

	settings := &models.Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return settings, nil
}

// ConfigPath returns where init writes config.yaml for a data directory
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, files.SettingsFile)
}
