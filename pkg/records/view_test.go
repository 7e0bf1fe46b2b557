package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id     string
	name   string
	email  string
	status string
	role   string
	date   time.Time
	count  int
}

func (r row) RecordID() string { return r.id }

func testSchema() *Schema[row] {
	return &Schema[row]{
		Noun:      "people",
		EmptyVerb: "registered",
		Search: []func(row) string{
			func(r row) string { return r.name },
			func(r row) string { return r.email },
		},
		Dimensions: []Dimension[row]{
			{
				Name:  "status",
				Label: "Status",
				Options: []Option{
					{Value: "active", Label: "Active"},
					{Value: "suspended", Label: "Suspended"},
				},
				Value: func(r row) string { return r.status },
			},
			{
				Name:    "role",
				Label:   "Roles",
				Options: []Option{{Value: "author", Label: "Author"}},
				Value:   func(r row) string { return r.role },
			},
		},
		SortFields: []SortField[row]{
			ByTime("date", "Date", func(r row) time.Time { return r.date }),
			ByString("name", "Name", func(r row) string { return r.name }),
			ByInt("count", "Count", func(r row) int { return r.count }),
		},
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.July, d, 10, 0, 0, 0, time.UTC)
}

func ids(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.id)
	}
	return out
}

func TestDeriveSearch(t *testing.T) {
	records := []row{
		{id: "1", name: "Sarah Johnson", email: "sarah@university.edu"},
		{id: "2", name: "David Wilson", email: "david@tech.edu"},
	}
	engine := NewEngine(testSchema())

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty term keeps everything", search: "", want: []string{"1", "2"}},
		{name: "case-insensitive substring", search: "john", want: []string{"1"}},
		{name: "upper case term", search: "WILSON", want: []string{"2"}},
		{name: "matches any field", search: "tech.edu", want: []string{"2"}},
		{name: "no match", search: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Derive(records, Query{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDeriveFilters(t *testing.T) {
	records := []row{
		{id: "A", status: "active", role: "author"},
		{id: "B", status: "suspended", role: "author"},
		{id: "C", status: "active", role: "editor"},
	}
	engine := NewEngine(testSchema())

	tests := []struct {
		name    string
		filters FilterState
		want    []string
	}{
		{name: "nil filters", filters: nil, want: []string{"A", "B", "C"}},
		{name: "all sentinel", filters: FilterState{"status": AllValue}, want: []string{"A", "B", "C"}},
		{name: "single dimension", filters: FilterState{"status": "active"}, want: []string{"A", "C"}},
		{name: "two dimensions", filters: FilterState{"status": "active", "role": "author"}, want: []string{"A"}},
		{name: "case-sensitive equality", filters: FilterState{"status": "Active"}, want: []string{}},
		{name: "unknown dimension ignored", filters: FilterState{"colour": "blue"}, want: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Derive(records, Query{Filters: tt.filters})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDeriveFilterSoundAndComplete(t *testing.T) {
	records := []row{
		{id: "1", name: "Ann", status: "active", role: "author"},
		{id: "2", name: "Anna", status: "suspended", role: "author"},
		{id: "3", name: "Bob", status: "active", role: "editor"},
		{id: "4", name: "Hannah", status: "active", role: "author"},
	}
	engine := NewEngine(testSchema())

	for _, search := range []string{"", "ann", "bob", "x"} {
		for _, status := range []string{AllValue, "active", "suspended"} {
			for _, role := range []string{AllValue, "author", "editor"} {
				filters := FilterState{"status": status, "role": role}
				visible := engine.Derive(records, Query{Search: search, Filters: filters})

				in := make(map[string]bool)
				for _, r := range visible {
					in[r.id] = true
					assert.True(t, engine.Matches(r, search, filters), "visible %s must match", r.id)
				}
				for _, r := range records {
					if !in[r.id] {
						assert.False(t, engine.Matches(r, search, filters), "hidden %s must not match", r.id)
					}
				}
			}
		}
	}
}

func TestDeriveSortByDate(t *testing.T) {
	records := []row{
		{id: "05", date: day(5)},
		{id: "08", date: day(8)},
		{id: "03", date: day(3)},
	}
	engine := NewEngine(testSchema())

	desc := engine.Derive(records, Query{Sort: SortState{Field: "date", Direction: Descending}})
	assert.Equal(t, []string{"08", "05", "03"}, ids(desc))

	asc := engine.Derive(records, Query{Sort: SortState{Field: "date", Direction: Ascending}})
	assert.Equal(t, []string{"03", "05", "08"}, ids(asc))
}

func TestDeriveSortIsStableInBothDirections(t *testing.T) {
	records := []row{
		{id: "a1", name: "a", count: 2},
		{id: "b1", name: "b", count: 1},
		{id: "a2", name: "a", count: 2},
		{id: "b2", name: "b", count: 1},
		{id: "a3", name: "a", count: 2},
	}
	engine := NewEngine(testSchema())

	asc := engine.Derive(records, Query{Sort: SortState{Field: "name", Direction: Ascending}})
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2"}, ids(asc))

	desc := engine.Derive(records, Query{Sort: SortState{Field: "name", Direction: Descending}})
	assert.Equal(t, []string{"b1", "b2", "a1", "a2", "a3"}, ids(desc))

	byCount := engine.Derive(records, Query{Sort: SortState{Field: "count", Direction: Descending}})
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2"}, ids(byCount))
}

func TestDeriveUnknownSortKeepsInsertionOrder(t *testing.T) {
	records := []row{{id: "3"}, {id: "1"}, {id: "2"}}
	engine := NewEngine(testSchema())

	got := engine.Derive(records, Query{Sort: SortState{Field: "nope", Direction: Descending}})
	assert.Equal(t, []string{"3", "1", "2"}, ids(got))
}

func TestDeriveIsPure(t *testing.T) {
	records := []row{
		{id: "2", name: "b"},
		{id: "1", name: "a"},
	}
	engine := NewEngine(testSchema())
	q := Query{Sort: SortState{Field: "name", Direction: Ascending}}

	first := engine.Derive(records, q)
	second := engine.Derive(records, q)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"2", "1"}, ids(records), "source must not be reordered")
}

func TestDeriveEmpty(t *testing.T) {
	engine := NewEngine(testSchema())
	got := engine.Derive(nil, Query{Search: "x", Sort: SortState{Field: "date"}})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHasActiveFilters(t *testing.T) {
	assert.False(t, HasActiveFilters(Query{}))
	assert.False(t, HasActiveFilters(Query{Filters: FilterState{"status": AllValue}}))
	assert.True(t, HasActiveFilters(Query{Search: "x"}))
	assert.True(t, HasActiveFilters(Query{Filters: FilterState{"status": "active"}}))
}

func TestDimensionNextOption(t *testing.T) {
	dim, ok := testSchema().Dimension("status")
	require.True(t, ok)

	assert.Equal(t, "active", dim.NextOption(AllValue))
	assert.Equal(t, "active", dim.NextOption(""))
	assert.Equal(t, "suspended", dim.NextOption("active"))
	assert.Equal(t, AllValue, dim.NextOption("suspended"))
	assert.Equal(t, AllValue, dim.NextOption("bogus"))

	assert.Equal(t, "All Status", dim.OptionLabel(AllValue))
	assert.Equal(t, "Suspended", dim.OptionLabel("suspended"))
	assert.Equal(t, "bogus", dim.OptionLabel("bogus"))
}

func TestNextSortField(t *testing.T) {
	s := testSchema()
	assert.Equal(t, "name", s.NextSortField("date"))
	assert.Equal(t, "count", s.NextSortField("name"))
	assert.Equal(t, "date", s.NextSortField("count"))
	assert.Equal(t, "date", s.NextSortField("unknown"))
}

func TestFilterStateWithCopies(t *testing.T) {
	base := FilterState{"status": "active"}
	next := base.With("role", "author")

	assert.Equal(t, "author", next.Get("role"))
	assert.Equal(t, AllValue, base.Get("role"))
	assert.Equal(t, AllValue, FilterState(nil).Get("status"))
}
