package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/inkpress/inkpress-admin/pkg/records"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

// NormalizeTable maps table name variants to the canonical table name
func NormalizeTable(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manuscripts", "manuscript", "ms":
		return workflow.TableManuscripts, nil
	case "users", "user", "u":
		return workflow.TableUsers, nil
	}
	return "", fmt.Errorf("invalid table: %s (must be: manuscripts or users)", name)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	valid := []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
	if slices.Contains(valid, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ParseFilters turns repeated dim=value flags into a filter state
func ParseFilters(flags []string) (records.FilterState, error) {
	filters := records.FilterState{}
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid filter %q (expected dimension=value)", f)
		}
		filters[strings.ToLower(name)] = strings.TrimSpace(value)
	}
	return filters, nil
}

// ValidateIDs rejects empty or blank record ids
func ValidateIDs(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("at least one record id is required")
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("record id cannot be empty")
		}
	}
	return nil
}
