package records

// Selection is an ordered set of record identifiers. Identifiers may refer
// to records that are no longer in the source collection; they are kept
// until the next select-all or clear.
type Selection struct {
	ids   []string
	index map[string]struct{}
}

// NewSelection creates a selection holding ids in order, skipping duplicates
func NewSelection(ids ...string) *Selection {
	s := &Selection{index: make(map[string]struct{})}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Toggle adds id if absent and removes it if present
func (s *Selection) Toggle(id string) {
	if s.Contains(id) {
		s.remove(id)
		return
	}
	s.add(id)
}

// Set mirrors a row checkbox: checked adds, unchecked removes
func (s *Selection) Set(id string, checked bool) {
	if checked {
		s.add(id)
	} else {
		s.remove(id)
	}
}

// SelectAllVisible replaces the selection with exactly the visible ids
func SelectAllVisible[T Record](s *Selection, visible []T) {
	s.Clear()
	for _, r := range visible {
		s.add(r.RecordID())
	}
}

// IsAllVisibleSelected reports whether visible is non-empty and every
// visible id is selected. Ids outside visible do not matter.
func IsAllVisibleSelected[T Record](s *Selection, visible []T) bool {
	if len(visible) == 0 {
		return false
	}
	for _, r := range visible {
		if !s.Contains(r.RecordID()) {
			return false
		}
	}
	return true
}

// StaleIDs lists selected ids with no matching record in the collection
func StaleIDs[T Record](s *Selection, all []T) []string {
	present := make(map[string]struct{}, len(all))
	for _, r := range all {
		present[r.RecordID()] = struct{}{}
	}
	var stale []string
	for _, id := range s.ids {
		if _, ok := present[id]; !ok {
			stale = append(stale, id)
		}
	}
	return stale
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.ids = nil
	s.index = make(map[string]struct{})
}

// Contains reports whether id is selected
func (s *Selection) Contains(id string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[id]
	return ok
}

// IDs returns the selected ids in selection order
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids
func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) add(id string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *Selection) remove(id string) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			break
		}
	}
}
