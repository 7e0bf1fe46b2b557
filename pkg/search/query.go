// Package search parses the table search box. Plain words become the
// free-text term; "dimension:value" words set categorical filters and
// "sort:field" / "order:asc|desc" change the ordering.
package search

import (
	"strings"

	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
)

// Reserved prefixes understood by every table
const (
	PrefixSort  = "sort"
	PrefixOrder = "order"
)

// QueryFilter represents a single "key:value" word
type QueryFilter struct {
	Key   string
	Value string
}

// ParsedQuery represents a parsed search query
type ParsedQuery struct {
	Filters  []QueryFilter
	FreeText string // Any remaining text that isn't part of a filter
}

// ParseQuery splits query into filters for the given keys and free text.
// Words with any other prefix stay in the free text, which keeps the
// spacing it was typed with; a filter word is cut out together with the
// blanks after it. Quotes around a free word are dropped.
// Example: `status:"under review" climate` yields one filter and "climate"
func ParseQuery(query string, keys []string) *ParsedQuery {
	result := &ParsedQuery{
		Filters: []QueryFilter{},
	}

	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[strings.ToLower(k)] = true
	}

	var free strings.Builder
	prev, skipGap := 0, false
	for _, w := range splitQueryPreservingQuotes(query) {
		part := query[w.start:w.end]
		key, value, found := strings.Cut(part, ":")
		key = strings.ToLower(key)
		if found && known[key] {
			result.Filters = append(result.Filters, QueryFilter{
				Key:   key,
				Value: strings.Trim(strings.TrimSpace(value), `"'`),
			})
			prev, skipGap = w.end, true
			continue
		}
		if !skipGap {
			free.WriteString(query[prev:w.start])
		}
		free.WriteString(strings.Trim(part, `"'`))
		prev, skipGap = w.end, false
	}

	result.FreeText = strings.TrimSpace(free.String())
	return result
}

// span is a word's byte range within the query
type span struct {
	start, end int
}

// splitQueryPreservingQuotes finds the space separated words of a query,
// keeping quoted strings whole
func splitQueryPreservingQuotes(query string) []span {
	var words []span
	start := -1
	inQuotes := false
	quoteChar := rune(0)

	for i, r := range query {
		switch {
		case !inQuotes && (r == '"' || r == '\''):
			inQuotes = true
			quoteChar = r
		case inQuotes && r == quoteChar:
			inQuotes = false
		case !inQuotes && r == ' ':
			if start >= 0 {
				words = append(words, span{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		words = append(words, span{start, len(query)})
	}

	return words
}

// GetFilter returns the last filter with the given key; later words win
func (pq *ParsedQuery) GetFilter(key string) (QueryFilter, bool) {
	for i := len(pq.Filters) - 1; i >= 0; i-- {
		if pq.Filters[i].Key == key {
			return pq.Filters[i], true
		}
	}
	return QueryFilter{}, false
}

// Keys lists the prefixes a schema understands
func Keys[T any](schema *records.Schema[T]) []string {
	keys := make([]string, 0, len(schema.Dimensions)+2)
	for _, d := range schema.Dimensions {
		keys = append(keys, d.Name)
	}
	return append(keys, PrefixSort, PrefixOrder)
}

// Apply parses input against schema and layers the result onto base.
// Filter values are normalized ("Under Review" matches under_review);
// unknown sort fields and orders are ignored.
func Apply[T any](schema *records.Schema[T], base records.Query, input string) records.Query {
	pq := ParseQuery(input, Keys(schema))

	q := records.Query{
		Search:  pq.FreeText,
		Filters: base.Filters,
		Sort:    base.Sort,
	}

	for _, f := range pq.Filters {
		switch f.Key {
		case PrefixSort:
			if _, ok := schema.SortField(f.Value); ok {
				q.Sort.Field = f.Value
			}
		case PrefixOrder:
			switch strings.ToLower(f.Value) {
			case string(records.Ascending):
				q.Sort.Direction = records.Ascending
			case string(records.Descending):
				q.Sort.Direction = records.Descending
			}
		default:
			value := models.NormalizeValue(f.Value)
			if value == "" {
				value = records.AllValue
			}
			q.Filters = q.Filters.With(f.Key, value)
		}
	}
	return q
}

// Format renders the filter part of q back into query syntax
func Format[T any](schema *records.Schema[T], q records.Query) string {
	var parts []string
	for _, d := range schema.Dimensions {
		if v := q.Filters.Get(d.Name); v != records.AllValue {
			parts = append(parts, d.Name+":"+v)
		}
	}
	if q.Search != "" {
		parts = append(parts, q.Search)
	}
	return strings.Join(parts, " ")
}
