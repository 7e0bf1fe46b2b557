// Package workflow defines the manuscript and user tables: how their
// records are searched, filtered and sorted, which actions they offer, and
// the desk that applies the resulting intents.
package workflow

import (
	"time"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
)

// Table names used in journals and on the command line
const (
	TableManuscripts = "manuscripts"
	TableUsers       = "users"
)

// Manuscript sort fields
const (
	SortSubmitted = "submitted_date"
	SortTitle     = "title"
	SortAuthor    = "author"
	SortStatus    = "status"
)

// DefaultManuscriptSort is newest submissions first
var DefaultManuscriptSort = records.SortState{Field: SortSubmitted, Direction: records.Descending}

func vocabularyOptions(v models.Vocabulary) []records.Option {
	opts := make([]records.Option, len(v))
	for i, t := range v {
		opts[i] = records.Option{Value: t.Value, Label: t.MenuLabel()}
	}
	return opts
}

// ManuscriptSchema searches title and author, filters on status and sorts
// by submission date, title, author or status
func ManuscriptSchema() *records.Schema[models.Manuscript] {
	return &records.Schema[models.Manuscript]{
		Noun:      "manuscripts",
		EmptyVerb: "submitted",
		Search: []func(models.Manuscript) string{
			func(m models.Manuscript) string { return m.Title },
			func(m models.Manuscript) string { return m.Author },
		},
		Dimensions: []records.Dimension[models.Manuscript]{
			{
				Name:    "status",
				Label:   "Status",
				Options: vocabularyOptions(models.ManuscriptStatuses),
				Value:   func(m models.Manuscript) string { return m.Status },
			},
		},
		SortFields: []records.SortField[models.Manuscript]{
			records.ByTime(SortSubmitted, "Submission Date", func(m models.Manuscript) time.Time { return m.SubmittedDate }),
			records.ByString(SortTitle, "Title", func(m models.Manuscript) string { return m.Title }),
			records.ByString(SortAuthor, "Author", func(m models.Manuscript) string { return m.Author }),
			records.ByString(SortStatus, "Status", func(m models.Manuscript) string { return m.Status }),
		},
	}
}

// ManuscriptBulkActions lists the actions offered over the selection
func ManuscriptBulkActions(e actions.Emitter) []actions.Descriptor {
	return []actions.Descriptor{
		{ID: ActionAssignReviewer, Label: "Assign Reviewer", Icon: "+", Command: actions.Emit(e, ActionAssignReviewer, nil)},
		{ID: ActionUpdateStatus, Label: "Update Status", Icon: "↻", Command: actions.Emit(e, ActionUpdateStatus, nil)},
		actions.Separator(),
		{ID: ActionExport, Label: "Export Selected", Icon: "↓", Shortcut: "e", Command: actions.Emit(e, ActionExport, nil)},
		{ID: ActionDelete, Label: "Delete Selected", Icon: "✗", Variant: actions.VariantDestructive, Command: actions.Emit(e, ActionDelete, nil)},
	}
}

// ManuscriptRowActions lists the actions for one manuscript. Reject is
// disabled once the manuscript is already rejected.
func ManuscriptRowActions(e actions.Emitter, m models.Manuscript) []actions.Descriptor {
	return []actions.Descriptor{
		{ID: ActionView, Label: "View Details", Icon: "◉", Shortcut: "v", Command: actions.Emit(e, ActionView, nil)},
		{ID: ActionAssignReviewer, Label: "Assign Reviewer", Icon: "+", Command: actions.Emit(e, ActionAssignReviewer, nil)},
		{ID: ActionDownload, Label: "Download Files", Icon: "↓", Command: actions.Emit(e, ActionDownload, nil)},
		actions.Separator(),
		{
			ID:       ActionReject,
			Label:    "Reject",
			Icon:     "✗",
			Variant:  actions.VariantDestructive,
			Disabled: m.Status == models.StatusRejected,
			Command:  actions.Emit(e, ActionUpdateStatus, map[string]string{ArgStatus: models.StatusRejected}),
		},
	}
}
