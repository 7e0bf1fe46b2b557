package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacePanel(t *testing.T) {
	trigger := Rect{X: 30, Y: 10, W: 2, H: 1}

	tests := []struct {
		pos  Position
		want Rect
	}{
		{BottomLeft, Rect{X: 30, Y: 11, W: 12, H: 5}},
		{BottomRight, Rect{X: 20, Y: 11, W: 12, H: 5}},
		{TopLeft, Rect{X: 30, Y: 5, W: 12, H: 5}},
		{TopRight, Rect{X: 20, Y: 5, W: 12, H: 5}},
		{"sideways", Rect{X: 20, Y: 11, W: 12, H: 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.pos), func(t *testing.T) {
			assert.Equal(t, tt.want, PlacePanel(trigger, 12, 5, tt.pos))
		})
	}
}

func TestPlacePanelClampsToScreen(t *testing.T) {
	got := PlacePanel(Rect{X: 1, Y: 1, W: 1, H: 1}, 10, 4, TopRight)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 4}, got)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 2, W: 3, H: 2}

	assert.True(t, r.Contains(Point{X: 2, Y: 2}))
	assert.True(t, r.Contains(Point{X: 4, Y: 3}))
	assert.False(t, r.Contains(Point{X: 5, Y: 3}))
	assert.False(t, r.Contains(Point{X: 3, Y: 4}))
	assert.False(t, Rect{}.Contains(Point{}))
}

func TestDescriptorDefaults(t *testing.T) {
	assert.Equal(t, "(untitled)", Descriptor{}.DisplayLabel())
	assert.Equal(t, "export", Descriptor{ID: "export"}.DisplayLabel())
	assert.Equal(t, VariantDefault, Descriptor{}.EffectiveVariant())
	assert.False(t, Separator().Selectable())
}

func TestIntentCopiesTargets(t *testing.T) {
	targets := []string{"1", "2"}
	i := NewIntent("update_status", targets, map[string]string{"status": "rejected"})
	targets[0] = "9"

	assert.Equal(t, []string{"1", "2"}, i.TargetIDs)
	assert.Equal(t, "rejected", i.Arg("status"))
	assert.Equal(t, "", i.Arg("missing"))
	assert.NotEmpty(t, i.ID)
	assert.False(t, i.At.IsZero())
}
