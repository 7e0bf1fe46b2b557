package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkpress/inkpress-admin/pkg/models"
)

// ReadManuscripts loads manuscripts.yaml from dir. A missing file is an
// empty collection; a missing dir is ErrNoDataDir.
func ReadManuscripts(dir string) ([]models.Manuscript, error) {
	if err := CheckDataDir(dir); err != nil {
		return nil, err
	}
	var file models.ManuscriptFile
	if err := readYAML(filepath.Join(dir, ManuscriptsFile), &file); err != nil {
		if os.IsNotExist(err) {
			return []models.Manuscript{}, nil
		}
		return nil, fmt.Errorf("failed to read manuscripts: %w", err)
	}
	return file.Manuscripts, nil
}

// WriteManuscripts replaces manuscripts.yaml in dir
func WriteManuscripts(dir string, ms []models.Manuscript) error {
	if err := writeYAML(filepath.Join(dir, ManuscriptsFile), models.ManuscriptFile{Manuscripts: ms}); err != nil {
		return fmt.Errorf("failed to write manuscripts: %w", err)
	}
	return nil
}

// ReadUsers loads users.yaml from dir
func ReadUsers(dir string) ([]models.User, error) {
	if err := CheckDataDir(dir); err != nil {
		return nil, err
	}
	var file models.UserFile
	if err := readYAML(filepath.Join(dir, UsersFile), &file); err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return file.Users, nil
}

// WriteUsers replaces users.yaml in dir
func WriteUsers(dir string, us []models.User) error {
	if err := writeYAML(filepath.Join(dir, UsersFile), models.UserFile{Users: us}); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}

// Seed writes the given collections unless the files already exist.
// It reports whether anything was written.
func Seed(dir string, ms []models.Manuscript, us []models.User) (bool, error) {
	if err := InitDataDir(dir); err != nil {
		return false, err
	}

	wrote := false
	if _, err := os.Stat(filepath.Join(dir, ManuscriptsFile)); os.IsNotExist(err) {
		if err := WriteManuscripts(dir, ms); err != nil {
			return wrote, err
		}
		wrote = true
	}
	if _, err := os.Stat(filepath.Join(dir, UsersFile)); os.IsNotExist(err) {
		if err := WriteUsers(dir, us); err != nil {
			return wrote, err
		}
		wrote = true
	}
	return wrote, nil
}
