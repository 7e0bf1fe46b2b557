package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit         key.Binding
	nextTab      key.Binding
	prevTab      key.Binding
	up           key.Binding
	down         key.Binding
	search       key.Binding
	toggleRow    key.Binding
	toggleAll    key.Binding
	cycleStatus  key.Binding
	cycleRole    key.Binding
	cycleSort    key.Binding
	direction    key.Binding
	bulkMenu     key.Binding
	rowMenu      key.Binding
	choose       key.Binding
	close        key.Binding
	clearFilters key.Binding
	toggleHelp   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		nextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next table"),
		),
		prevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev table"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		toggleRow: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		toggleAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		cycleStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status filter"),
		),
		cycleRole: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "role filter"),
		),
		cycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by"),
		),
		direction: key.NewBinding(
			key.WithKeys("o", "S"),
			key.WithHelp("o", "sort order"),
		),
		bulkMenu: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bulk actions"),
		),
		rowMenu: key.NewBinding(
			key.WithKeys(".", "enter"),
			key.WithHelp("./enter", "row actions"),
		),
		choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run action"),
		),
		close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		clearFilters: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.toggleRow, k.toggleAll, k.bulkMenu, k.rowMenu, k.nextTab, k.toggleHelp, k.quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.nextTab, k.prevTab},
		{k.search, k.cycleStatus, k.cycleRole, k.clearFilters},
		{k.cycleSort, k.direction, k.toggleRow, k.toggleAll},
		{k.bulkMenu, k.rowMenu, k.close, k.quit},
	}
}

// menuKeys is the help shown while an action menu is open
func (k keyMap) menuKeys() []key.Binding {
	return []key.Binding{k.up, k.down, k.choose, k.close}
}
