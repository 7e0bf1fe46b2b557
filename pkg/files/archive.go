package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inkpress/inkpress-admin/pkg/models"
)

// ArchiveManuscripts appends removed manuscripts to archive/manuscripts.yaml
// so a delete can be undone by hand
func ArchiveManuscripts(dir string, removed []models.Manuscript) error {
	if len(removed) == 0 {
		return nil
	}
	path := filepath.Join(dir, ArchiveDir, ManuscriptsFile)

	var file models.ManuscriptFile
	if err := readYAML(path, &file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read manuscript archive: %w", err)
	}
	file.Manuscripts = append(file.Manuscripts, removed...)

	if err := writeYAML(path, file); err != nil {
		return fmt.Errorf("failed to archive manuscripts: %w", err)
	}
	return nil
}

// ArchiveUsers appends removed users to archive/users.yaml
func ArchiveUsers(dir string, removed []models.User) error {
	if len(removed) == 0 {
		return nil
	}
	path := filepath.Join(dir, ArchiveDir, UsersFile)

	var file models.UserFile
	if err := readYAML(path, &file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read user archive: %w", err)
	}
	file.Users = append(file.Users, removed...)

	if err := writeYAML(path, file); err != nil {
		return fmt.Errorf("failed to archive users: %w", err)
	}
	return nil
}

// ReadArchivedManuscripts lists archived manuscripts
func ReadArchivedManuscripts(dir string) ([]models.Manuscript, error) {
	var file models.ManuscriptFile
	if err := readYAML(filepath.Join(dir, ArchiveDir, ManuscriptsFile), &file); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return file.Manuscripts, nil
}

// ReadArchivedUsers lists archived users
func ReadArchivedUsers(dir string) ([]models.User, error) {
	var file models.UserFile
	if err := readYAML(filepath.Join(dir, ArchiveDir, UsersFile), &file); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return file.Users, nil
}
