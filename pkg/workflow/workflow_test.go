package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
)

func userIDs(us []models.User) []string {
	out := make([]string, len(us))
	for i, u := range us {
		out[i] = u.ID
	}
	return out
}

func manuscriptIDs(ms []models.Manuscript) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestUserSearchIsCaseInsensitive(t *testing.T) {
	users := []models.User{
		{ID: "1", Name: "Sarah Johnson", Email: "s@u.edu", Institution: "Stanford"},
		{ID: "2", Name: "David Wilson", Email: "d@t.edu", Institution: "Caltech"},
	}
	engine := records.NewEngine(UserSchema())

	got := engine.Derive(users, records.Query{Search: "john", Sort: DefaultUserSort})
	assert.Equal(t, []string{"1"}, userIDs(got))

	got = engine.Derive(users, records.Query{Search: "CALTECH", Sort: DefaultUserSort})
	assert.Equal(t, []string{"2"}, userIDs(got))
}

func TestUserStatusFilterThenSelectAll(t *testing.T) {
	users := []models.User{
		{ID: "A", Name: "A", Status: models.UserActive},
		{ID: "B", Name: "B", Status: models.UserSuspended},
	}
	table := records.NewTable(UserSchema(), DefaultUserSort)
	table.SetRecords(users)
	table.SetFilter("status", models.UserActive)

	require.Equal(t, []string{"A"}, userIDs(table.Visible()))
	table.SetAllVisible(true)
	assert.Equal(t, []string{"A"}, table.Selection().IDs())
	assert.True(t, table.AllVisibleSelected())
}

func TestManuscriptDefaultSortIsNewestFirst(t *testing.T) {
	engine := records.NewEngine(ManuscriptSchema())
	got := engine.Derive(SampleManuscripts(), records.Query{Sort: DefaultManuscriptSort})

	assert.Equal(t, []string{"MS-2024-003", "MS-2024-001", "MS-2024-002", "MS-2024-004", "MS-2024-005"}, manuscriptIDs(got))
}

func TestManuscriptSearchCoversTitleAndAuthor(t *testing.T) {
	engine := records.NewEngine(ManuscriptSchema())
	ms := SampleManuscripts()

	byTitle := engine.Derive(ms, records.Query{Search: "quantum", Sort: DefaultManuscriptSort})
	assert.Equal(t, []string{"MS-2024-002"}, manuscriptIDs(byTitle))

	byAuthor := engine.Derive(ms, records.Query{Search: "garcia", Sort: DefaultManuscriptSort})
	assert.Equal(t, []string{"MS-2024-005"}, manuscriptIDs(byAuthor))

	// email is displayed but not searched
	none := engine.Derive(ms, records.Query{Search: "green.org", Sort: DefaultManuscriptSort})
	assert.Empty(t, none)
}

func TestUserSortByManuscriptCount(t *testing.T) {
	engine := records.NewEngine(UserSchema())
	got := engine.Derive(SampleUsers(), records.Query{Sort: records.SortState{Field: SortManuscripts, Direction: records.Descending}})

	// equal counts keep their original order
	assert.Equal(t, []string{"USR-003", "USR-001", "USR-004", "USR-002", "USR-005"}, userIDs(got))
}

func TestSchemaOptionsUseMenuLabels(t *testing.T) {
	dim, ok := UserSchema().Dimension("status")
	require.True(t, ok)
	assert.Equal(t, "Pending Verification", dim.OptionLabel(models.UserPending))
	assert.Equal(t, "All Status", dim.OptionLabel(records.AllValue))
}

func descriptorIDs(ds []actions.Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		if d.Separator {
			out[i] = "---"
			continue
		}
		out[i] = d.ID
	}
	return out
}

func TestActionLists(t *testing.T) {
	active := models.User{ID: "u1", Status: models.UserActive}
	pending := models.User{ID: "u2", Status: models.UserPending}

	tests := []struct {
		name string
		got  []actions.Descriptor
		want []string
	}{
		{"manuscript bulk", ManuscriptBulkActions(nil), []string{"assign_reviewer", "update_status", "---", "export", "delete"}},
		{"manuscript row", ManuscriptRowActions(nil, models.Manuscript{ID: "m1"}), []string{"view", "assign_reviewer", "download", "---", "reject"}},
		{"user bulk", UserBulkActions(nil), []string{"activate", "suspend", "---", "export", "delete"}},
		{"active user row", UserRowActions(nil, active), []string{"view", "edit", "reset_password", "---", "suspend"}},
		{"pending user row", UserRowActions(nil, pending), []string{"view", "edit", "reset_password", "---", "activate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, descriptorIDs(tt.got))
		})
	}
}

func TestUserRowToggleVariant(t *testing.T) {
	suspend := UserRowActions(nil, models.User{ID: "u", Status: models.UserActive})[4]
	assert.Equal(t, "Suspend User", suspend.Label)
	assert.Equal(t, actions.VariantWarning, suspend.Variant)

	activate := UserRowActions(nil, models.User{ID: "u", Status: models.UserSuspended})[4]
	assert.Equal(t, "Activate User", activate.Label)
	assert.Equal(t, actions.VariantSuccess, activate.Variant)
}

func TestRejectEmitsStatusUpdate(t *testing.T) {
	var got []actions.Intent
	e := actions.EmitterFunc(func(i actions.Intent) error {
		got = append(got, i)
		return nil
	})

	reject := ManuscriptRowActions(e, models.Manuscript{ID: "MS-1", Status: models.StatusSubmitted})[4]
	require.Equal(t, actions.VariantDestructive, reject.Variant)
	require.NoError(t, actions.NewDispatcher(nil).Execute(reject, actions.RowContext("MS-1"), nil))

	require.Len(t, got, 1)
	assert.Equal(t, ActionUpdateStatus, got[0].ActionID)
	assert.Equal(t, []string{"MS-1"}, got[0].TargetIDs)
	assert.Equal(t, models.StatusRejected, got[0].Arg(ArgStatus))

	already := ManuscriptRowActions(e, models.Manuscript{ID: "MS-2", Status: models.StatusRejected})[4]
	assert.True(t, already.Disabled)
}

func TestReviewers(t *testing.T) {
	assert.Equal(t, []string{"Dr. Michael Chen"}, Reviewers(SampleUsers()))
}
