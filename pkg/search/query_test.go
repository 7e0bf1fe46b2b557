package search

import (
	"reflect"
	"testing"

	"github.com/inkpress/inkpress-admin/pkg/records"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

func TestParseQuery(t *testing.T) {
	keys := []string{"status", "role", PrefixSort}

	tests := []struct {
		name     string
		query    string
		expected *ParsedQuery
	}{
		{
			name:  "empty query",
			query: "",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{},
				FreeText: "",
			},
		},
		{
			name:  "filter and free text",
			query: "status:active john",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{{Key: "status", Value: "active"}},
				FreeText: "john",
			},
		},
		{
			name:  "quoted value",
			query: `status:"under review" climate`,
			expected: &ParsedQuery{
				Filters:  []QueryFilter{{Key: "status", Value: "under review"}},
				FreeText: "climate",
			},
		},
		{
			name:  "prefix is case insensitive",
			query: "ROLE:Editor",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{{Key: "role", Value: "Editor"}},
				FreeText: "",
			},
		},
		{
			name:  "unknown prefix stays free text",
			query: "email:foo@bar.org wilson",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{},
				FreeText: "email:foo@bar.org wilson",
			},
		},
		{
			name:  "quoted free text",
			query: `"machine learning"`,
			expected: &ParsedQuery{
				Filters:  []QueryFilter{},
				FreeText: "machine learning",
			},
		},
		{
			name:  "extra spaces",
			query: "  sarah   status:pending ",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{{Key: "status", Value: "pending"}},
				FreeText: "sarah",
			},
		},
		{
			name:  "free text keeps its spacing",
			query: "john  smith",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{},
				FreeText: "john  smith",
			},
		},
		{
			name:  "filter cut out between words",
			query: "john  status:active  smith",
			expected: &ParsedQuery{
				Filters:  []QueryFilter{{Key: "status", Value: "active"}},
				FreeText: "john  smith",
			},
		},
		{
			name:  "quoted word among free text",
			query: `climate "sea level" role:author`,
			expected: &ParsedQuery{
				Filters:  []QueryFilter{{Key: "role", Value: "author"}},
				FreeText: "climate sea level",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseQuery(tt.query, keys)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.query, result, tt.expected)
			}
		})
	}
}

func TestGetFilterLastWins(t *testing.T) {
	pq := ParseQuery("status:active status:pending", []string{"status"})
	f, ok := pq.GetFilter("status")
	if !ok || f.Value != "pending" {
		t.Errorf("GetFilter(status) = %+v, %v; want pending", f, ok)
	}
	if _, ok := pq.GetFilter("role"); ok {
		t.Errorf("GetFilter(role) should not be found")
	}
}

func TestApply(t *testing.T) {
	schema := workflow.UserSchema()
	base := records.Query{Sort: workflow.DefaultUserSort}

	q := Apply(schema, base, "status:active role:Editor wilson")
	if q.Search != "wilson" {
		t.Errorf("Search = %q, want wilson", q.Search)
	}
	if got := q.Filters.Get("status"); got != "active" {
		t.Errorf("status filter = %q, want active", got)
	}
	if got := q.Filters.Get("role"); got != "editor" {
		t.Errorf("role filter = %q, want editor", got)
	}
	if q.Sort != workflow.DefaultUserSort {
		t.Errorf("Sort = %+v, want default", q.Sort)
	}

	users := records.NewEngine(schema).Derive(workflow.SampleUsers(), q)
	if len(users) != 1 || users[0].ID != "USR-003" {
		t.Errorf("expected only USR-003, got %+v", users)
	}
}

func TestApplySortAndOrder(t *testing.T) {
	schema := workflow.ManuscriptSchema()
	base := records.Query{Sort: workflow.DefaultManuscriptSort}

	q := Apply(schema, base, "sort:title order:asc")
	want := records.SortState{Field: workflow.SortTitle, Direction: records.Ascending}
	if q.Sort != want {
		t.Errorf("Sort = %+v, want %+v", q.Sort, want)
	}

	q = Apply(schema, base, "sort:pages order:sideways")
	if q.Sort != workflow.DefaultManuscriptSort {
		t.Errorf("unknown sort and order should be ignored, got %+v", q.Sort)
	}
}

func TestApplyKeepsBaseFilters(t *testing.T) {
	schema := workflow.UserSchema()
	base := records.Query{Filters: records.FilterState{"role": "admin"}}

	q := Apply(schema, base, "status:suspended")
	if q.Filters.Get("role") != "admin" || q.Filters.Get("status") != "suspended" {
		t.Errorf("Filters = %v", q.Filters)
	}
	if base.Filters.Get("status") != records.AllValue {
		t.Errorf("base filters were modified: %v", base.Filters)
	}
}

func TestFormat(t *testing.T) {
	schema := workflow.UserSchema()
	q := records.Query{
		Search:  "john",
		Filters: records.FilterState{"status": "active", "role": records.AllValue},
	}
	if got := Format(schema, q); got != "status:active john" {
		t.Errorf("Format() = %q", got)
	}
}
