package actions

// TriggerKind selects the glyph drawn on a menu trigger
type TriggerKind string

const (
	TriggerDots    TriggerKind = "dots"
	TriggerChevron TriggerKind = "chevron"
	TriggerMenu    TriggerKind = "menu"
)

// Glyph returns the trigger glyph; open menus flip the chevron
func (k TriggerKind) Glyph(open bool) string {
	switch k {
	case TriggerChevron:
		if open {
			return "▴"
		}
		return "▾"
	case TriggerMenu:
		return "≡"
	default:
		return "⋮"
	}
}

// Menu is a floating list of commands anchored to a trigger.
//
// It starts closed. A trigger click opens it; a second trigger click, a
// pointer-down outside both the trigger and the panel, Escape, or choosing
// a command without KeepOpen closes it. The pointer and key listeners are
// attached to the hub only while the menu is open.
type Menu struct {
	hub      *ListenerHub
	scope    *Scope
	open     bool
	position Position
	kind     TriggerKind

	// Disabled menus ignore trigger clicks
	Disabled bool

	items     []Descriptor
	highlight int

	trigger Rect
	panelW  int
	panelH  int
}

// NewMenu creates a closed menu attached to hub
func NewMenu(hub *ListenerHub, position Position, kind TriggerKind) *Menu {
	if kind == "" {
		kind = TriggerDots
	}
	return &Menu{
		hub:       hub,
		position:  ParsePosition(string(position)),
		kind:      kind,
		highlight: -1,
	}
}

// IsOpen reports the menu state
func (m *Menu) IsOpen() bool {
	return m.open
}

// Position returns the configured corner
func (m *Menu) Position() Position {
	return m.position
}

// Kind returns the trigger kind
func (m *Menu) Kind() TriggerKind {
	return m.kind
}

// SetItems replaces the entries. Callers rebuild them on every render so
// row actions always reflect the current record state.
func (m *Menu) SetItems(items []Descriptor) {
	m.items = items
	if m.highlight >= len(items) || (m.highlight >= 0 && items[m.highlight].Separator) {
		m.highlight = m.firstEntry()
	}
}

// Items returns the current entries
func (m *Menu) Items() []Descriptor {
	return m.items
}

// ClickTrigger toggles the menu
func (m *Menu) ClickTrigger() {
	if m.Disabled {
		return
	}
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// Open enters the open state and attaches the listener pair
func (m *Menu) Open() {
	if m.open || m.Disabled {
		return
	}
	m.open = true
	m.highlight = m.firstEntry()
	if m.hub != nil {
		m.scope = m.hub.Attach(m.handlePointer, m.handleKey)
	}
}

// Close leaves the open state and releases the listener pair
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.scope.Release()
	m.scope = nil
}

// Dispose releases any listeners; call it when the menu goes away
func (m *Menu) Dispose() {
	m.Close()
}

func (m *Menu) handlePointer(at Point) {
	if m.trigger.Contains(at) || m.PanelRect().Contains(at) {
		return
	}
	m.Close()
}

func (m *Menu) handleKey(key string) {
	if key == "esc" || key == "escape" {
		m.Close()
	}
}

// SetTriggerRect records where the trigger was drawn
func (m *Menu) SetTriggerRect(r Rect) {
	m.trigger = r
}

// TriggerRect returns the last recorded trigger area
func (m *Menu) TriggerRect() Rect {
	return m.trigger
}

// SetPanelSize records the rendered panel size
func (m *Menu) SetPanelSize(w, h int) {
	m.panelW = w
	m.panelH = h
}

// PanelRect returns the panel area, empty while closed
func (m *Menu) PanelRect() Rect {
	if !m.open {
		return Rect{}
	}
	w, h := m.panelW, m.panelH
	if w == 0 || h == 0 {
		w, h = m.estimateSize()
	}
	return PlacePanel(m.trigger, w, h, m.position)
}

// estimateSize sizes the panel from its labels: border plus padding
func (m *Menu) estimateSize() (int, int) {
	widest := 0
	for _, d := range m.items {
		n := len([]rune(d.DisplayLabel())) + len([]rune(d.Shortcut)) + len([]rune(d.Badge))
		if d.Icon != "" {
			n += 2
		}
		if n > widest {
			widest = n
		}
	}
	return widest + 6, len(m.items) + 2
}

// ItemAt maps a point inside the panel to an entry index. Separators and
// the border map to nothing.
func (m *Menu) ItemAt(at Point) (int, bool) {
	panel := m.PanelRect()
	if !panel.Contains(at) {
		return -1, false
	}
	idx := at.Y - panel.Y - 1
	if idx < 0 || idx >= len(m.items) || m.items[idx].Separator {
		return -1, false
	}
	return idx, true
}

// Highlight returns the keyboard-highlighted entry index, -1 when none
func (m *Menu) Highlight() int {
	return m.highlight
}

// MoveHighlight steps over separators in the given direction, wrapping
func (m *Menu) MoveHighlight(delta int) {
	n := len(m.items)
	if n == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	idx := m.highlight
	if idx < 0 && step < 0 {
		idx = 0
	}
	for range n {
		idx = (idx + step + n) % n
		if !m.items[idx].Separator {
			m.highlight = idx
			return
		}
	}
}

func (m *Menu) firstEntry() int {
	for i, d := range m.items {
		if !d.Separator {
			return i
		}
	}
	return -1
}
