package workflow

import (
	"time"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
)

// User sort fields
const (
	SortName        = "name"
	SortLastActive  = "last_active"
	SortManuscripts = "manuscript_count"
	SortRole        = "role"
)

var DefaultUserSort = records.SortState{Field: SortName, Direction: records.Ascending}

// UserSchema searches name, email and institution and filters on role and
// status
func UserSchema() *records.Schema[models.User] {
	return &records.Schema[models.User]{
		Noun:      "users",
		EmptyVerb: "registered",
		Search: []func(models.User) string{
			func(u models.User) string { return u.Name },
			func(u models.User) string { return u.Email },
			func(u models.User) string { return u.Institution },
		},
		Dimensions: []records.Dimension[models.User]{
			{
				Name:    "role",
				Label:   "Roles",
				Options: vocabularyOptions(models.UserRoles),
				Value:   func(u models.User) string { return u.Role },
			},
			{
				Name:    "status",
				Label:   "Status",
				Options: vocabularyOptions(models.UserStatuses),
				Value:   func(u models.User) string { return u.Status },
			},
		},
		SortFields: []records.SortField[models.User]{
			records.ByString(SortName, "Name", func(u models.User) string { return u.Name }),
			records.ByTime(SortLastActive, "Last Active", func(u models.User) time.Time { return u.LastActive }),
			records.ByInt(SortManuscripts, "Manuscripts", func(u models.User) int { return u.ManuscriptCount }),
			records.ByString(SortRole, "Role", func(u models.User) string { return u.Role }),
		},
	}
}

// UserBulkActions lists the actions offered over the selection
func UserBulkActions(e actions.Emitter) []actions.Descriptor {
	return []actions.Descriptor{
		{ID: ActionActivate, Label: "Activate Users", Icon: "✓", Variant: actions.VariantSuccess, Command: actions.Emit(e, ActionActivate, nil)},
		{ID: ActionSuspend, Label: "Suspend Users", Icon: "⊘", Variant: actions.VariantWarning, Command: actions.Emit(e, ActionSuspend, nil)},
		actions.Separator(),
		{ID: ActionExport, Label: "Export Selected", Icon: "↓", Shortcut: "e", Command: actions.Emit(e, ActionExport, nil)},
		{ID: ActionDelete, Label: "Delete Users", Icon: "✗", Variant: actions.VariantDestructive, Command: actions.Emit(e, ActionDelete, nil)},
	}
}

// UserRowActions lists the actions for one user. The last entry suspends
// active users and activates everyone else.
func UserRowActions(e actions.Emitter, u models.User) []actions.Descriptor {
	toggle := actions.Descriptor{ID: ActionActivate, Label: "Activate User", Icon: "✓", Variant: actions.VariantSuccess}
	if u.Active() {
		toggle = actions.Descriptor{ID: ActionSuspend, Label: "Suspend User", Icon: "⊘", Variant: actions.VariantWarning}
	}
	toggle.Command = actions.Emit(e, toggle.ID, nil)

	return []actions.Descriptor{
		{ID: ActionView, Label: "View Profile", Icon: "◉", Shortcut: "v", Command: actions.Emit(e, ActionView, nil)},
		{ID: ActionEdit, Label: "Edit User", Icon: "✎", Command: actions.Emit(e, ActionEdit, nil)},
		{ID: ActionResetPassword, Label: "Reset Password", Icon: "⚿", Command: actions.Emit(e, ActionResetPassword, nil)},
		actions.Separator(),
		toggle,
	}
}
