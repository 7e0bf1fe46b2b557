package journal

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/inkpress-admin/pkg/actions"
)

func openTest(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRecent(t *testing.T) {
	j := openTest(t)

	first := actions.NewIntent("suspend", []string{"USR-001", "USR-002"}, nil)
	second := actions.NewIntent("update_status", []string{"MS-1"}, map[string]string{"status": "rejected"})
	third := actions.NewIntent("delete", []string{"USR-9"}, nil)

	require.NoError(t, j.Record("users", first, nil))
	require.NoError(t, j.Record("manuscripts", second, nil))
	require.NoError(t, j.Record("users", third, errors.New("no matching record")))

	all, err := j.Recent("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].Intent.ID, "newest first")
	assert.True(t, all[0].Failed())
	assert.Equal(t, "no matching record", all[0].Error)

	assert.Equal(t, "manuscripts", all[1].Table)
	assert.Equal(t, "rejected", all[1].Intent.Arg("status"))
	assert.True(t, second.At.Equal(all[1].Intent.At))

	assert.Equal(t, []string{"USR-001", "USR-002"}, all[2].Intent.TargetIDs)
	assert.False(t, all[2].Failed())

	users, err := j.Recent("users", 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "delete", users[0].Intent.ActionID)

	n, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestEmptyTargetsRoundTrip(t *testing.T) {
	j := openTest(t)
	require.NoError(t, j.Record("users", actions.NewIntent("export", []string{}, nil), nil))

	entries, err := j.Recent("users", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Intent.TargetIDs)
	assert.Nil(t, entries[0].Intent.Args)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Record("users", actions.NewIntent("activate", []string{"USR-004"}, nil), nil))
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	n, err := j.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClosedJournal(t *testing.T) {
	j, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, j.Close())
	require.NoError(t, j.Close())

	assert.ErrorIs(t, j.Record("users", actions.NewIntent("view", nil, nil), nil), ErrClosed)
	_, err = j.Recent("", 0)
	assert.ErrorIs(t, err, ErrClosed)
}
