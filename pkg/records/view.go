package records

import (
	"slices"
	"strings"
)

// Direction of a sort
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Toggle flips the direction
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// FilterState maps a dimension name to its selected value.
// A missing dimension is the same as AllValue.
type FilterState map[string]string

// Get returns the selected value for a dimension, AllValue when unset
func (f FilterState) Get(name string) string {
	if v, ok := f[name]; ok && v != "" {
		return v
	}
	return AllValue
}

// With returns a copy of the filter state with name set to value
func (f FilterState) With(name, value string) FilterState {
	out := make(FilterState, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[name] = value
	return out
}

// SortState is the single active sort
type SortState struct {
	Field     string
	Direction Direction
}

// Query is everything the engine needs besides the records
type Query struct {
	Search  string
	Filters FilterState
	Sort    SortState
}

// Engine derives visible rows for one schema
type Engine[T any] struct {
	schema *Schema[T]
}

// NewEngine creates an engine bound to a schema
func NewEngine[T any](schema *Schema[T]) *Engine[T] {
	return &Engine[T]{schema: schema}
}

// Schema returns the engine's schema
func (e *Engine[T]) Schema() *Schema[T] {
	return e.schema
}

// Derive filters then stably sorts records. The input slice is never
// modified; the result holds the same elements in a new slice.
func (e *Engine[T]) Derive(records []T, q Query) []T {
	visible := make([]T, 0, len(records))
	term := strings.ToLower(q.Search)
	for _, r := range records {
		if e.matchesSearch(r, term) && e.matchesFilters(r, q.Filters) {
			visible = append(visible, r)
		}
	}

	field, ok := e.schema.SortField(q.Sort.Field)
	if !ok || field.Compare == nil {
		return visible
	}

	compare := field.Compare
	if q.Sort.Direction == Descending {
		compare = func(a, b T) int { return field.Compare(b, a) }
	}
	slices.SortStableFunc(visible, compare)
	return visible
}

// Matches reports whether a single record passes the search and filter passes
func (e *Engine[T]) Matches(r T, search string, filters FilterState) bool {
	return e.matchesSearch(r, strings.ToLower(search)) && e.matchesFilters(r, filters)
}

func (e *Engine[T]) matchesSearch(r T, lowerTerm string) bool {
	if lowerTerm == "" {
		return true
	}
	for _, extract := range e.schema.Search {
		if strings.Contains(strings.ToLower(extract(r)), lowerTerm) {
			return true
		}
	}
	return false
}

func (e *Engine[T]) matchesFilters(r T, filters FilterState) bool {
	for name, value := range filters {
		if value == "" || value == AllValue {
			continue
		}
		dim, ok := e.schema.Dimension(name)
		if !ok || dim.Value == nil {
			// unknown dimensions filter nothing
			continue
		}
		if dim.Value(r) != value {
			return false
		}
	}
	return true
}

// HasActiveFilters reports whether the search term or any dimension narrows the view
func HasActiveFilters(q Query) bool {
	if q.Search != "" {
		return true
	}
	for _, v := range q.Filters {
		if v != "" && v != AllValue {
			return true
		}
	}
	return false
}
