package files

import "github.com/inkpress/inkpress-admin/pkg/models"

// Store writes desk collections back to a data directory. Deleted records
// are archived before the collection file is replaced.
type Store struct {
	Dir string
}

// NewStore returns a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) SaveManuscripts(current, removed []models.Manuscript) error {
	if err := ArchiveManuscripts(s.Dir, removed); err != nil {
		return err
	}
	return WriteManuscripts(s.Dir, current)
}

func (s *Store) SaveUsers(current, removed []models.User) error {
	if err := ArchiveUsers(s.Dir, removed); err != nil {
		return err
	}
	return WriteUsers(s.Dir, current)
}
