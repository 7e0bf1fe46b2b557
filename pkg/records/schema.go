// Package records derives the visible rows of an admin table from a source
// collection plus search, filter and sort state, and tracks multi-selection.
package records

import (
	"cmp"
	"strings"
	"time"
)

// AllValue disables a filter dimension
const AllValue = "all"

// Record is anything the table can display. Identifiers must be unique
// within a collection.
type Record interface {
	RecordID() string
}

// Option is one selectable value of a filter dimension or sort field
type Option struct {
	Value string
	Label string
}

// Dimension is a categorical filter over records
type Dimension[T any] struct {
	Name    string
	Label   string
	Options []Option // excluding "all"
	Value   func(T) string
}

// SortField orders records by one field
type SortField[T any] struct {
	Name    string
	Label   string
	Compare func(a, b T) int
}

// ByString builds a sort field comparing extracted strings
func ByString[T any](name, label string, extract func(T) string) SortField[T] {
	return SortField[T]{
		Name:  name,
		Label: label,
		Compare: func(a, b T) int {
			return strings.Compare(extract(a), extract(b))
		},
	}
}

// ByTime builds a sort field comparing instants chronologically
func ByTime[T any](name, label string, extract func(T) time.Time) SortField[T] {
	return SortField[T]{
		Name:  name,
		Label: label,
		Compare: func(a, b T) int {
			return extract(a).Compare(extract(b))
		},
	}
}

// ByInt builds a sort field comparing extracted integers
func ByInt[T any](name, label string, extract func(T) int) SortField[T] {
	return SortField[T]{
		Name:  name,
		Label: label,
		Compare: func(a, b T) int {
			return cmp.Compare(extract(a), extract(b))
		},
	}
}

// Schema declares the closed set of search fields, filter dimensions and
// sortable fields of one table
type Schema[T any] struct {
	// Noun is the plural record name used in empty-state messages
	Noun string
	// EmptyVerb completes "No <noun> have been <verb> yet"
	EmptyVerb string

	Search     []func(T) string
	Dimensions []Dimension[T]
	SortFields []SortField[T]
}

// Dimension looks up a filter dimension by name
func (s *Schema[T]) Dimension(name string) (Dimension[T], bool) {
	for _, d := range s.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return Dimension[T]{}, false
}

// SortField looks up a sortable field by name
func (s *Schema[T]) SortField(name string) (SortField[T], bool) {
	for _, f := range s.SortFields {
		if f.Name == name {
			return f, true
		}
	}
	return SortField[T]{}, false
}

// NextOption returns the value following current in the dimension's cycle
// all -> first option -> ... -> last option -> all
func (d Dimension[T]) NextOption(current string) string {
	if current == "" || current == AllValue {
		if len(d.Options) == 0 {
			return AllValue
		}
		return d.Options[0].Value
	}
	for i, opt := range d.Options {
		if opt.Value == current {
			if i+1 < len(d.Options) {
				return d.Options[i+1].Value
			}
			return AllValue
		}
	}
	return AllValue
}

// OptionLabel returns the display label for a dimension value
func (d Dimension[T]) OptionLabel(value string) string {
	if value == "" || value == AllValue {
		return "All " + d.Label
	}
	for _, opt := range d.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// NextSortField returns the name of the field after current, wrapping around
func (s *Schema[T]) NextSortField(current string) string {
	if len(s.SortFields) == 0 {
		return current
	}
	for i, f := range s.SortFields {
		if f.Name == current {
			return s.SortFields[(i+1)%len(s.SortFields)].Name
		}
	}
	return s.SortFields[0].Name
}
