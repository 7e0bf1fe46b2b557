package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir  = ".inkpress"
	ManuscriptsFile = "manuscripts.yaml"
	UsersFile       = "users.yaml"
	SettingsFile    = "config.yaml"
	JournalFile     = "journal.db"
	ArchiveDir      = "archive"
)

// ErrNoDataDir is returned when the data directory has not been initialized
var ErrNoDataDir = errors.New("data directory not initialized (run 'inkpress init')")

// InitDataDir creates dir and its archive directory
func InitDataDir(dir string) error {
	dirs := []string{
		dir,
		filepath.Join(dir, ArchiveDir),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	return nil
}

// CheckDataDir returns ErrNoDataDir when dir does not exist
func CheckDataDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoDataDir
		}
		return fmt.Errorf("failed to stat data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// JournalPath returns the intent journal location inside dir
func JournalPath(dir string) string {
	return filepath.Join(dir, JournalFile)
}

func readYAML(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}
	return nil
}

func writeYAML(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// replace atomically
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to a file (for exports)
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
