package records

import "fmt"

// Table bundles the state a container keeps for one record table: the
// current collection, the query and the selection. Visible rows are
// re-derived on every call.
type Table[T Record] struct {
	engine    *Engine[T]
	records   []T
	query     Query
	selection *Selection
}

// NewTable creates a table over a schema with an initial sort
func NewTable[T Record](schema *Schema[T], sort SortState) *Table[T] {
	if sort.Direction == "" {
		sort.Direction = Ascending
	}
	return &Table[T]{
		engine:    NewEngine(schema),
		query:     Query{Filters: FilterState{}, Sort: sort},
		selection: NewSelection(),
	}
}

// Schema returns the table schema
func (t *Table[T]) Schema() *Schema[T] {
	return t.engine.Schema()
}

// SetRecords swaps in a new source collection. The selection is left alone.
func (t *Table[T]) SetRecords(records []T) {
	t.records = records
}

// Records returns the source collection
func (t *Table[T]) Records() []T {
	return t.records
}

// Query returns the current query
func (t *Table[T]) Query() Query {
	return t.query
}

// SetQuery replaces search, filters and sort at once
func (t *Table[T]) SetQuery(q Query) {
	if q.Filters == nil {
		q.Filters = FilterState{}
	}
	if q.Sort.Direction == "" {
		q.Sort.Direction = Ascending
	}
	t.query = q
}

// SetFilter selects a value for a dimension; AllValue clears it
func (t *Table[T]) SetFilter(dimension, value string) {
	t.query.Filters = t.query.Filters.With(dimension, value)
}

// CycleFilter advances a dimension to its next option and returns it
func (t *Table[T]) CycleFilter(dimension string) string {
	dim, ok := t.Schema().Dimension(dimension)
	if !ok {
		return AllValue
	}
	next := dim.NextOption(t.query.Filters.Get(dimension))
	t.SetFilter(dimension, next)
	return next
}

// CycleSort moves to the next sortable field, keeping the direction
func (t *Table[T]) CycleSort() string {
	t.query.Sort.Field = t.Schema().NextSortField(t.query.Sort.Field)
	return t.query.Sort.Field
}

// ToggleDirection flips the sort direction
func (t *Table[T]) ToggleDirection() Direction {
	t.query.Sort.Direction = t.query.Sort.Direction.Toggle()
	return t.query.Sort.Direction
}

// Visible derives the rows currently displayed
func (t *Table[T]) Visible() []T {
	return t.engine.Derive(t.records, t.query)
}

// Selection exposes the selection set
func (t *Table[T]) Selection() *Selection {
	return t.selection
}

// Toggle flips one row's selection
func (t *Table[T]) Toggle(id string) {
	t.selection.Toggle(id)
}

// SetAllVisible mirrors the header checkbox: checked selects exactly the
// visible rows, unchecked clears everything
func (t *Table[T]) SetAllVisible(checked bool) {
	if checked {
		SelectAllVisible(t.selection, t.Visible())
		return
	}
	t.selection.Clear()
}

// ToggleAllVisible flips the header checkbox based on its current state
func (t *Table[T]) ToggleAllVisible() {
	t.SetAllVisible(!t.AllVisibleSelected())
}

// AllVisibleSelected reports the header checkbox state
func (t *Table[T]) AllVisibleSelected() bool {
	return IsAllVisibleSelected(t.selection, t.Visible())
}

// EmptyState returns the headline and hint shown when no rows are visible
func (t *Table[T]) EmptyState() (string, string) {
	noun := t.Schema().Noun
	if noun == "" {
		noun = "records"
	}
	title := fmt.Sprintf("No %s found", noun)
	if HasActiveFilters(t.query) {
		return title, "Try adjusting your search or filter criteria"
	}
	verb := t.Schema().EmptyVerb
	if verb == "" {
		verb = "added"
	}
	return title, fmt.Sprintf("No %s have been %s yet", noun, verb)
}
