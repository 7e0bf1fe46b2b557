package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherExecute(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name       string
		descriptor func(calls *int) Descriptor
		wantCalls  int
		wantOpen   bool
		wantErr    error
	}{
		{
			name: "command closes menu",
			descriptor: func(calls *int) Descriptor {
				return Descriptor{ID: "view", Command: func(Context) error { *calls++; return nil }}
			},
			wantCalls: 1,
			wantOpen:  false,
		},
		{
			name: "keep open",
			descriptor: func(calls *int) Descriptor {
				return Descriptor{ID: "pin", KeepOpen: true, Command: func(Context) error { *calls++; return nil }}
			},
			wantCalls: 1,
			wantOpen:  true,
		},
		{
			name: "disabled never fires",
			descriptor: func(calls *int) Descriptor {
				return Descriptor{ID: "locked", Disabled: true, Command: func(Context) error { *calls++; return nil }}
			},
			wantCalls: 0,
			wantOpen:  true,
		},
		{
			name: "separator is inert",
			descriptor: func(calls *int) Descriptor {
				d := Separator()
				d.Command = func(Context) error { *calls++; return nil }
				return d
			},
			wantCalls: 0,
			wantOpen:  true,
		},
		{
			name: "error still closes",
			descriptor: func(calls *int) Descriptor {
				return Descriptor{ID: "delete", Command: func(Context) error { *calls++; return boom }}
			},
			wantCalls: 1,
			wantOpen:  false,
			wantErr:   boom,
		},
		{
			name: "nil command closes",
			descriptor: func(calls *int) Descriptor {
				return Descriptor{ID: "noop"}
			},
			wantCalls: 0,
			wantOpen:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := NewListenerHub()
			menu := NewMenu(hub, BottomRight, TriggerDots)
			menu.Open()

			calls := 0
			err := NewDispatcher(nil).Execute(tt.descriptor(&calls), RowContext("1"), menu)

			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantOpen, menu.IsOpen())
			if !tt.wantOpen {
				assert.Equal(t, 0, hub.Active())
			}
		})
	}
}

func TestDispatcherForwardsContext(t *testing.T) {
	var got Context
	d := Descriptor{ID: "export", Command: func(ctx Context) error { got = ctx; return nil }}

	require.NoError(t, NewDispatcher(nil).Execute(d, BulkContext([]string{"3", "1"}), nil))
	assert.Equal(t, []string{"3", "1"}, got.IDs)
	assert.True(t, got.Bulk)
}

func TestDispatcherEmptySelectionIsForwarded(t *testing.T) {
	var emitted []Intent
	emitter := EmitterFunc(func(i Intent) error {
		emitted = append(emitted, i)
		return nil
	})
	d := Descriptor{ID: "delete", Command: Emit(emitter, "delete", nil)}

	require.NoError(t, NewDispatcher(nil).Execute(d, BulkContext(nil), nil))
	require.Len(t, emitted, 1)
	assert.Empty(t, emitted[0].TargetIDs)
}

func TestDispatcherChoose(t *testing.T) {
	hub := NewListenerHub()
	menu := NewMenu(hub, BottomLeft, TriggerDots)
	var calls []string
	menu.SetItems(sampleItems(&calls))
	menu.Open()
	dp := NewDispatcher(nil)

	require.NoError(t, dp.Choose(menu, 1, RowContext("7")))
	assert.Equal(t, []string{"pin"}, calls)
	assert.True(t, menu.IsOpen())

	require.NoError(t, dp.Choose(menu, 3, RowContext("7")))
	assert.Equal(t, []string{"pin"}, calls, "disabled entry")
	assert.True(t, menu.IsOpen())

	require.NoError(t, dp.Choose(menu, 99, RowContext("7")))
	assert.True(t, menu.IsOpen())

	menu.MoveHighlight(1)
	menu.MoveHighlight(1)
	menu.MoveHighlight(1)
	require.Equal(t, 4, menu.Highlight())
	require.NoError(t, dp.ChooseHighlighted(menu, RowContext("7")))
	assert.Equal(t, []string{"pin", "delete"}, calls)
	assert.False(t, menu.IsOpen())
	assert.Equal(t, 0, hub.Active())
}
