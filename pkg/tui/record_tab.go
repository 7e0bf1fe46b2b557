package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/records"
	"github.com/inkpress/inkpress-admin/pkg/search"
)

// pane is one tab of the console
type pane interface {
	Title() string
	SearchBar() *SearchBar
	SetSize(width, height int)
	SetOrigin(y int)
	Reload()
	ApplySearch()
	HandleKey(msg tea.KeyMsg, keys keyMap) string
	Click(at actions.Point) bool
	Scroll(delta int)
	Menus() []*actions.Menu
	Context(m *actions.Menu) actions.Context
	CloseMenus()
	View() string
}

// column describes one table column; width 0 takes the remaining space
type column[T any] struct {
	title string
	width int
	cell  func(T) string
}

const (
	cursorWidth   = 2
	checkboxWidth = 4
	triggerWidth  = 3
	minFlexWidth  = 16
)

// recordTab renders a records.Table with checkboxes, a row action menu per
// row and a bulk action menu over the selection
type recordTab[T records.Record] struct {
	name    string
	table   *records.Table[T]
	base    records.Query
	search  *SearchBar
	columns []column[T]

	load        func() []T
	rowActions  func(T) []actions.Descriptor
	bulkActions func() []actions.Descriptor

	hub      *actions.ListenerHub
	position actions.Position
	bulk     *actions.Menu
	rowMenus map[string]*actions.Menu

	cursor  int
	offset  int
	width   int
	height  int
	originY int
}

type tabConfig[T records.Record] struct {
	name        string
	schema      *records.Schema[T]
	sort        records.SortState
	columns     []column[T]
	load        func() []T
	rowActions  func(T) []actions.Descriptor
	bulkActions func() []actions.Descriptor
	hub         *actions.ListenerHub
	position    actions.Position
}

func newRecordTab[T records.Record](cfg tabConfig[T]) *recordTab[T] {
	t := &recordTab[T]{
		name:        cfg.name,
		table:       records.NewTable(cfg.schema, cfg.sort),
		search:      NewSearchBar(fmt.Sprintf("Search %s… (%s)", cfg.schema.Noun, searchHint(cfg.schema))),
		columns:     cfg.columns,
		load:        cfg.load,
		rowActions:  cfg.rowActions,
		bulkActions: cfg.bulkActions,
		hub:         cfg.hub,
		position:    cfg.position,
		rowMenus:    make(map[string]*actions.Menu),
	}
	t.base = t.table.Query()
	t.bulk = actions.NewMenu(cfg.hub, actions.BottomLeft, actions.TriggerChevron)
	t.Reload()
	return t
}

func searchHint[T any](schema *records.Schema[T]) string {
	if len(schema.Dimensions) == 0 {
		return "sort:field"
	}
	d := schema.Dimensions[0]
	example := records.AllValue
	if len(d.Options) > 0 {
		example = d.Options[0].Value
	}
	return d.Name + ":" + example
}

func (t *recordTab[T]) Title() string {
	return fmt.Sprintf("%s (%d)", t.name, len(t.table.Records()))
}

func (t *recordTab[T]) SearchBar() *SearchBar { return t.search }

func (t *recordTab[T]) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.search.SetWidth(width)
	t.layout()
}

func (t *recordTab[T]) SetOrigin(y int) {
	t.originY = y
	t.layout()
}

// Reload pulls the current collection from the source
func (t *recordTab[T]) Reload() {
	if t.load != nil {
		t.table.SetRecords(t.load())
	}
	t.layout()
}

// ApplySearch re-derives the query from the key-chosen filters and the search text
func (t *recordTab[T]) ApplySearch() {
	t.table.SetQuery(search.Apply(t.table.Schema(), t.base, t.search.Value()))
	t.cursor = 0
	t.offset = 0
	t.layout()
}

func (t *recordTab[T]) visible() []T {
	return t.table.Visible()
}

func (t *recordTab[T]) current() (T, bool) {
	rows := t.visible()
	if t.cursor < 0 || t.cursor >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[t.cursor], true
}

func (t *recordTab[T]) pageSize() int {
	// toolbar and header
	return max(t.height-2, 1)
}

func (t *recordTab[T]) moveCursor(delta int) {
	n := len(t.visible())
	if n == 0 {
		t.cursor = 0
		return
	}
	t.cursor = min(max(t.cursor+delta, 0), n-1)
	t.layout()
}

func (t *recordTab[T]) Scroll(delta int) {
	t.CloseMenus()
	t.moveCursor(delta)
}

// HandleKey runs table keys and returns a status line, "" for none
func (t *recordTab[T]) HandleKey(msg tea.KeyMsg, keys keyMap) string {
	switch {
	case key.Matches(msg, keys.up):
		t.moveCursor(-1)
	case key.Matches(msg, keys.down):
		t.moveCursor(1)

	case key.Matches(msg, keys.toggleRow):
		if r, ok := t.current(); ok {
			t.table.Toggle(r.RecordID())
			t.layout()
		}

	case key.Matches(msg, keys.toggleAll):
		t.table.ToggleAllVisible()
		t.layout()
		return fmt.Sprintf("%d selected", t.table.Selection().Len())

	case key.Matches(msg, keys.cycleStatus):
		return t.cycleFilter("status")
	case key.Matches(msg, keys.cycleRole):
		return t.cycleFilter("role")

	case key.Matches(msg, keys.cycleSort):
		t.table.CycleSort()
		t.adopt()
		return "Sort: " + t.sortLabel()

	case key.Matches(msg, keys.direction):
		t.table.ToggleDirection()
		t.adopt()
		return "Sort: " + t.sortLabel()

	case key.Matches(msg, keys.clearFilters):
		t.table.SetQuery(records.Query{Sort: t.table.Query().Sort})
		t.adopt()
		return "Filters cleared"

	case key.Matches(msg, keys.bulkMenu):
		if t.table.Selection().Len() == 0 {
			return "Select records first"
		}
		t.layout()
		t.bulk.Open()

	case key.Matches(msg, keys.rowMenu):
		r, ok := t.current()
		if !ok {
			return ""
		}
		t.CloseMenus()
		t.layout()
		if m, ok := t.rowMenus[r.RecordID()]; ok {
			m.Open()
		}
	}
	return ""
}

func (t *recordTab[T]) cycleFilter(name string) string {
	dim, ok := t.table.Schema().Dimension(name)
	if !ok {
		return ""
	}
	next := t.table.CycleFilter(name)
	t.adopt()
	return dim.Label + ": " + dim.OptionLabel(next)
}

// adopt makes the table's query the new base after a key changed it and
// rewrites the search text to match, so search.Apply reproduces the same
// query from both layers
func (t *recordTab[T]) adopt() {
	q := t.table.Query()
	t.search.SetValue(search.Format(t.table.Schema(), q))
	q.Search = ""
	t.base = q
	t.ApplySearch()
}

func (t *recordTab[T]) sortLabel() string {
	q := t.table.Query()
	label := q.Sort.Field
	if f, ok := t.table.Schema().SortField(q.Sort.Field); ok {
		label = f.Label
	}
	if q.Sort.Direction == records.Descending {
		return label + " ↓"
	}
	return label + " ↑"
}

// Click handles a pointer press on the tab's checkboxes, rows and triggers
func (t *recordTab[T]) Click(at actions.Point) bool {
	if t.bulkRect().Contains(at) {
		t.bulk.ClickTrigger()
		return true
	}
	for _, m := range t.rowMenus {
		if m.TriggerRect().Contains(at) {
			m.ClickTrigger()
			return true
		}
	}

	onCheckbox := at.X >= cursorWidth && at.X < cursorWidth+checkboxWidth-1
	row := at.Y - t.originY
	if row == 1 && onCheckbox {
		t.table.ToggleAllVisible()
		t.layout()
		return true
	}
	if row < 2 {
		return false
	}

	rows := t.visible()
	idx := t.offset + row - 2
	if idx >= len(rows) {
		return false
	}
	t.cursor = idx
	if onCheckbox {
		t.table.Toggle(rows[idx].RecordID())
	}
	t.layout()
	return true
}

// Menus returns the bulk menu and every live row menu
func (t *recordTab[T]) Menus() []*actions.Menu {
	menus := []*actions.Menu{t.bulk}
	for _, r := range t.window() {
		if m, ok := t.rowMenus[r.RecordID()]; ok {
			menus = append(menus, m)
		}
	}
	return menus
}

// Context returns the dispatch context for a menu owned by this tab
func (t *recordTab[T]) Context(m *actions.Menu) actions.Context {
	if m == t.bulk {
		return actions.BulkContext(t.table.Selection().IDs())
	}
	for id, rm := range t.rowMenus {
		if rm == m {
			return actions.RowContext(id)
		}
	}
	return actions.Context{}
}

func (t *recordTab[T]) CloseMenus() {
	t.bulk.Close()
	for _, m := range t.rowMenus {
		m.Close()
	}
}

func (t *recordTab[T]) window() []T {
	rows := t.visible()
	if t.offset > len(rows) {
		t.offset = 0
	}
	end := min(t.offset+t.pageSize(), len(rows))
	return rows[t.offset:end]
}

func (t *recordTab[T]) bulkLabel() string {
	return fmt.Sprintf("Bulk Actions (%d) %s", t.table.Selection().Len(), t.bulk.Kind().Glyph(t.bulk.IsOpen()))
}

func (t *recordTab[T]) bulkRect() actions.Rect {
	if t.table.Selection().Len() == 0 {
		return actions.Rect{}
	}
	return actions.Rect{X: 1, Y: t.originY, W: lipgloss.Width(BulkTriggerStyle.Render(t.bulkLabel())), H: 1}
}

// columnWidths resolves the flexible column against the tab width
func (t *recordTab[T]) columnWidths() []int {
	widths := make([]int, len(t.columns))
	fixed := cursorWidth + checkboxWidth + triggerWidth
	flex := -1
	for i, c := range t.columns {
		widths[i] = c.width
		fixed += c.width + 1
		if c.width == 0 {
			flex = i
		}
	}
	if flex >= 0 {
		widths[flex] = max(t.width-fixed, minFlexWidth)
	}
	return widths
}

func (t *recordTab[T]) triggerX() int {
	x := cursorWidth + checkboxWidth
	for _, w := range t.columnWidths() {
		x += w + 1
	}
	return x
}

// layout keeps the cursor on screen, gives every visible row a menu with
// entries for its current record and records where every trigger is drawn.
// View rebuilds the row entries again as it renders.
func (t *recordTab[T]) layout() {
	rows := t.visible()
	if t.cursor >= len(rows) {
		t.cursor = max(len(rows)-1, 0)
	}
	page := t.pageSize()
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.cursor >= t.offset+page {
		t.offset = t.cursor - page + 1
	}

	if t.bulkActions != nil {
		t.bulk.SetItems(t.bulkActions())
	}
	t.bulk.SetTriggerRect(t.bulkRect())
	t.bulk.Disabled = t.table.Selection().Len() == 0
	if t.bulk.Disabled {
		t.bulk.Close()
	}

	live := make(map[string]bool)
	x := t.triggerX()
	for i, r := range t.window() {
		id := r.RecordID()
		live[id] = true
		m, ok := t.rowMenus[id]
		if !ok {
			m = actions.NewMenu(t.hub, t.position, actions.TriggerDots)
			t.rowMenus[id] = m
		}
		if t.rowActions != nil {
			m.SetItems(t.rowActions(r))
		}
		m.SetTriggerRect(actions.Rect{X: x, Y: t.originY + 2 + i, W: triggerWidth, H: 1})
	}
	for id, m := range t.rowMenus {
		if !live[id] {
			m.Dispose()
			delete(t.rowMenus, id)
		}
	}
}

func fitCell(s string, width int) string {
	return padding.String(truncate.StringWithTail(s, uint(width), "…"), uint(width))
}

func (t *recordTab[T]) toolbar() string {
	var left string
	if t.table.Selection().Len() > 0 {
		left = " " + BulkTriggerStyle.Render(t.bulkLabel()) + " "
	}

	q := t.table.Query()
	var parts []string
	for _, d := range t.table.Schema().Dimensions {
		parts = append(parts, d.Label+": "+d.OptionLabel(q.Filters.Get(d.Name)))
	}
	parts = append(parts, "Sort: "+t.sortLabel())
	parts = append(parts, fmt.Sprintf("%d of %d", len(t.visible()), len(t.table.Records())))

	return left + DescriptionStyle.Render(" "+strings.Join(parts, " · "))
}

func (t *recordTab[T]) header(widths []int) string {
	box := "[ ] "
	if t.table.AllVisibleSelected() {
		box = "[x] "
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", cursorWidth))
	b.WriteString(box)
	for i, c := range t.columns {
		b.WriteString(fitCell(c.title, widths[i]))
		b.WriteString(" ")
	}
	return HeaderStyle.Render(b.String())
}

func (t *recordTab[T]) row(r T, idx int, widths []int) string {
	selected := t.table.Selection().Contains(r.RecordID())

	var b strings.Builder
	if idx == t.cursor {
		b.WriteString(CursorStyle.Render("▸ "))
	} else {
		b.WriteString("  ")
	}
	if selected {
		b.WriteString(CursorStyle.Render("[x]") + " ")
	} else {
		b.WriteString("[ ] ")
	}
	for i, c := range t.columns {
		b.WriteString(fitCell(c.cell(r), widths[i]))
		b.WriteString(" ")
	}
	if m, ok := t.rowMenus[r.RecordID()]; ok {
		// entries follow the record as rendered, never a cached copy
		if t.rowActions != nil {
			m.SetItems(t.rowActions(r))
		}
		b.WriteString(renderTrigger(m))
	}

	line := b.String()
	if idx == t.cursor {
		return lipgloss.NewStyle().Background(lipgloss.Color(ColorSelected)).Render(line)
	}
	return line
}

func (t *recordTab[T]) View() string {
	widths := t.columnWidths()
	lines := []string{t.toolbar(), t.header(widths)}

	rows := t.window()
	if len(rows) == 0 {
		title, hint := t.table.EmptyState()
		center := lipgloss.NewStyle().Width(max(t.width, 20)).Align(lipgloss.Center)
		lines = append(lines,
			"",
			center.Render(EmptyTitleStyle.Render(title)),
			center.Render(EmptyHintStyle.Render(wordwrap.String(hint, max(t.width-4, 20)))),
		)
		return strings.Join(lines, "\n")
	}

	for i, r := range rows {
		lines = append(lines, t.row(r, t.offset+i, widths))
	}
	return strings.Join(lines, "\n")
}
