package actions

// Point is a terminal cell
type Point struct {
	X, Y int
}

// Rect is a cell rectangle; W and H are exclusive extents
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Position is the corner of the trigger a panel hangs from
type Position string

const (
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
)

// ParsePosition maps a config string to a position, defaulting to bottom-right
func ParsePosition(s string) Position {
	switch Position(s) {
	case BottomLeft, BottomRight, TopLeft, TopRight:
		return Position(s)
	default:
		return BottomRight
	}
}

// PlacePanel positions a w x h panel against the trigger. Bottom panels
// start on the row below the trigger, top panels end on the row above it.
// Left panels share the trigger's left edge, right panels its right edge.
func PlacePanel(trigger Rect, w, h int, pos Position) Rect {
	panel := Rect{W: w, H: h}

	switch ParsePosition(string(pos)) {
	case BottomLeft, TopLeft:
		panel.X = trigger.X
	default:
		panel.X = trigger.X + trigger.W - w
	}

	switch ParsePosition(string(pos)) {
	case TopLeft, TopRight:
		panel.Y = trigger.Y - h
	default:
		panel.Y = trigger.Y + trigger.H
	}

	if panel.X < 0 {
		panel.X = 0
	}
	if panel.Y < 0 {
		panel.Y = 0
	}
	return panel
}
