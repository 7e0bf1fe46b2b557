package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkpress/inkpress-admin/internal/cli"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
	"github.com/inkpress/inkpress-admin/pkg/search"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

// queryFlags are the table query options shared by list and export
type queryFlags struct {
	search  string
	filters []string
	sort    string
	desc    bool
	asc     bool
}

func (q *queryFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&q.search, "search", "s", "", "Search text; accepts status:, role:, sort: and order: prefixes")
	cmd.Flags().StringArrayVarP(&q.filters, "filter", "f", nil, "Filter as dimension=value (repeatable)")
	cmd.Flags().StringVar(&q.sort, "sort", "", "Sort field")
	cmd.Flags().BoolVar(&q.desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&q.asc, "asc", false, "Sort ascending")
	cmd.MarkFlagsMutuallyExclusive("desc", "asc")
}

// query layers the flags onto base: filters and sort first, then the
// search syntax, which wins where both set something
func query[T any](q *queryFlags, schema *records.Schema[T], base records.Query) (records.Query, error) {
	filters, err := cli.ParseFilters(q.filters)
	if err != nil {
		return records.Query{}, err
	}
	for name, value := range filters {
		if _, ok := schema.Dimension(name); !ok {
			return records.Query{}, fmt.Errorf("unknown filter %q for %s", name, schema.Noun)
		}
		base.Filters = base.Filters.With(name, models.NormalizeValue(value))
	}

	if q.sort != "" {
		if _, ok := schema.SortField(q.sort); !ok {
			return records.Query{}, fmt.Errorf("unknown sort field %q (must be one of: %s)", q.sort, strings.Join(sortNames(schema), ", "))
		}
		base.Sort.Field = q.sort
	}
	switch {
	case q.desc:
		base.Sort.Direction = records.Descending
	case q.asc:
		base.Sort.Direction = records.Ascending
	}

	return search.Apply(schema, base, q.search), nil
}

func sortNames[T any](schema *records.Schema[T]) []string {
	names := make([]string, len(schema.SortFields))
	for i, f := range schema.SortFields {
		names[i] = f.Name
	}
	return names
}

// visibleManuscripts derives the manuscript rows the flags select
func visibleManuscripts(ctx *cli.CommandContext, q *queryFlags, all []models.Manuscript) ([]models.Manuscript, error) {
	table := records.NewTable(workflow.ManuscriptSchema(), ctx.ManuscriptSort())
	rq, err := query(q, table.Schema(), table.Query())
	if err != nil {
		return nil, err
	}
	table.SetRecords(all)
	table.SetQuery(rq)
	return table.Visible(), nil
}

// visibleUsers derives the user rows the flags select
func visibleUsers(q *queryFlags, all []models.User) ([]models.User, error) {
	table := records.NewTable(workflow.UserSchema(), workflow.DefaultUserSort)
	rq, err := query(q, table.Schema(), table.Query())
	if err != nil {
		return nil, err
	}
	table.SetRecords(all)
	table.SetQuery(rq)
	return table.Visible(), nil
}
