package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/journal"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/records"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

const (
	statusDuration = 3 * time.Second
	// tab bar plus the bordered search bar
	headerHeight = 4
	maxDetails   = 5
)

// Config wires the console to the desk that owns the collections
type Config struct {
	Desk           *workflow.Desk
	Journal        *journal.Journal
	Logger         *slog.Logger
	MenuPosition   actions.Position
	ManuscriptSort records.SortState
	ShowHelp       bool
}

// App is the root model: a row of tabs, each a searchable record table
type App struct {
	desk       *workflow.Desk
	logger     *slog.Logger
	hub        *actions.ListenerHub
	dispatcher *actions.Dispatcher
	keys       keyMap
	help       help.Model
	position   actions.Position

	tabs   []pane
	active int

	// picker asks for the argument an intent is missing
	picker        *actions.Menu
	pickerTargets []string
	origin        *actions.Menu
	confirm       *ConfirmationModel
	notice        string

	width     int
	height    int
	statusMsg string
	statusErr bool
	statusGen int
	showHelp  bool
}

// NewApp builds the console over cfg.Desk
func NewApp(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	desk := cfg.Desk
	if desk == nil {
		desk = workflow.NewDesk(nil, nil)
	}
	sort := cfg.ManuscriptSort
	if sort.Field == "" {
		sort = workflow.DefaultManuscriptSort
	}

	a := &App{
		desk:       desk,
		logger:     logger,
		hub:        actions.NewListenerHub(),
		dispatcher: actions.NewDispatcher(logger),
		keys:       newKeyMap(),
		help:       help.New(),
		position:   actions.ParsePosition(string(cfg.MenuPosition)),
		confirm:    NewConfirmation(),
		showHelp:   cfg.ShowHelp,
	}

	manuscriptGate := a.gate(workflow.TableManuscripts)
	userGate := a.gate(workflow.TableUsers)

	a.tabs = []pane{
		newRecordTab(tabConfig[models.Manuscript]{
			name:    "Manuscripts",
			schema:  workflow.ManuscriptSchema(),
			sort:    sort,
			columns: manuscriptColumns(),
			load:    desk.Manuscripts,
			rowActions: func(m models.Manuscript) []actions.Descriptor {
				return workflow.ManuscriptRowActions(manuscriptGate, m)
			},
			bulkActions: func() []actions.Descriptor { return workflow.ManuscriptBulkActions(manuscriptGate) },
			hub:         a.hub,
			position:    a.position,
		}),
		newRecordTab(tabConfig[models.User]{
			name:    "Users",
			schema:  workflow.UserSchema(),
			sort:    workflow.DefaultUserSort,
			columns: userColumns(),
			load:    desk.Users,
			rowActions: func(u models.User) []actions.Descriptor {
				return workflow.UserRowActions(userGate, u)
			},
			bulkActions: func() []actions.Descriptor { return workflow.UserBulkActions(userGate) },
			hub:         a.hub,
			position:    a.position,
		}),
		newActivityPane(cfg.Journal),
	}
	for _, p := range a.tabs {
		p.SetOrigin(headerHeight)
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) current() pane {
	return a.tabs[a.active]
}

// gate sits between the menus and the desk. Intents missing an argument
// open the picker and deletes ask for confirmation first.
func (a *App) gate(table string) actions.Emitter {
	return actions.EmitterFunc(func(i actions.Intent) error {
		if arg := workflow.MissingArg(i); arg != "" && len(i.TargetIDs) > 0 {
			a.openPicker(table, i, arg)
			return nil
		}
		if workflow.NeedsConfirmation(i) {
			a.askConfirmation(table, i)
			return nil
		}
		return a.apply(table, i)
	})
}

func (a *App) apply(table string, i actions.Intent) error {
	var (
		res workflow.Result
		err error
	)
	switch table {
	case workflow.TableManuscripts:
		res, err = a.desk.ApplyManuscript(i)
	case workflow.TableUsers:
		res, err = a.desk.ApplyUser(i)
	default:
		return fmt.Errorf("unknown table %q", table)
	}
	for _, p := range a.tabs {
		p.Reload()
	}
	if err != nil {
		return err
	}
	a.notice = res.Message
	return nil
}

func (a *App) openPicker(table string, i actions.Intent, arg string) {
	if a.picker != nil {
		a.picker.Dispose()
	}

	choose := func(value string) actions.Command {
		return func(actions.Context) error {
			return a.apply(table, workflow.WithArg(i, arg, value))
		}
	}

	var items []actions.Descriptor
	switch arg {
	case workflow.ArgStatus:
		for _, t := range models.ManuscriptStatuses {
			items = append(items, actions.Descriptor{ID: t.Value, Label: t.MenuLabel(), Command: choose(t.Value)})
		}
	case workflow.ArgReviewer:
		for _, name := range workflow.Reviewers(a.desk.Users()) {
			items = append(items, actions.Descriptor{ID: name, Label: name, Icon: "●", Command: choose(name)})
		}
		if len(items) == 0 {
			items = append(items, actions.Descriptor{ID: "none", Label: "No active reviewers", Disabled: true})
		}
	}
	items = append(items, actions.Separator(), actions.Descriptor{ID: "cancel", Label: "Cancel"})

	trigger := actions.Rect{X: a.width / 2, Y: headerHeight + 2, W: 1, H: 1}
	if a.origin != nil && !a.origin.TriggerRect().Empty() {
		trigger = a.origin.TriggerRect()
	}

	a.picker = actions.NewMenu(a.hub, a.position, actions.TriggerMenu)
	a.picker.SetItems(items)
	a.picker.SetTriggerRect(trigger)
	a.picker.Open()
	a.pickerTargets = i.TargetIDs
	a.logger.Debug("picker opened", "table", table, "action", i.ActionID, "arg", arg)
}

func (a *App) askConfirmation(table string, i actions.Intent) {
	details := i.TargetIDs
	if len(details) > maxDetails {
		details = append(details[:maxDetails:maxDetails], fmt.Sprintf("…and %d more", len(i.TargetIDs)-maxDetails))
	}
	a.confirm.Show(ConfirmationConfig{
		Title:       fmt.Sprintf("Delete %d %s(s)?", len(i.TargetIDs), strings.TrimSuffix(table, "s")),
		Message:     "The selected records are removed from the collection and archived.",
		Warning:     "This cannot be undone from the console.",
		Details:     details,
		Destructive: true,
		Width:       min(60, max(a.width-4, 30)),
	}, func() tea.Cmd {
		return a.afterDispatch(a.apply(table, i))
	}, func() tea.Cmd {
		return a.setStatus("Delete cancelled", false)
	})
}

// openMenu returns the open menu, if any. At most one is open at a time.
func (a *App) openMenu() *actions.Menu {
	for _, m := range a.menus() {
		if m.IsOpen() {
			return m
		}
	}
	return nil
}

func (a *App) menus() []*actions.Menu {
	menus := a.current().Menus()
	if a.picker != nil {
		menus = append(menus, a.picker)
	}
	return menus
}

func (a *App) contextFor(m *actions.Menu) actions.Context {
	if m == a.picker {
		return actions.Context{IDs: a.pickerTargets}
	}
	return a.current().Context(m)
}

func (a *App) choose(m *actions.Menu, index int) tea.Cmd {
	if m != a.picker {
		a.origin = m
	}
	err := a.dispatcher.Choose(m, index, a.contextFor(m))
	return a.afterDispatch(err)
}

func (a *App) afterDispatch(err error) tea.Cmd {
	if err != nil {
		a.notice = ""
		return a.setStatus(err.Error(), true)
	}
	if a.notice == "" {
		return nil
	}
	msg := a.notice
	a.notice = ""
	return a.setStatus(msg, false)
}

func (a *App) setStatus(msg string, isErr bool) tea.Cmd {
	a.statusMsg = msg
	a.statusErr = isErr
	a.statusGen++
	gen := a.statusGen
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}

func (a *App) switchTab(delta int) {
	a.current().CloseMenus()
	a.current().SearchBar().SetActive(false)
	if a.picker != nil {
		a.picker.Dispose()
		a.picker = nil
	}
	a.active = (a.active + delta + len(a.tabs)) % len(a.tabs)
	a.current().Reload()
}

func (a *App) resize() {
	bodyHeight := a.height - lipgloss.Height(a.footer())
	for _, p := range a.tabs {
		p.SetSize(a.width, max(bodyHeight-headerHeight, 3))
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.resize()
		return a, nil

	case StatusMsg:
		return a, a.setStatus(string(msg), false)

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusErr = false
		a.statusGen++
		return a, nil

	case clearStatusMsg:
		if msg.gen == a.statusGen {
			a.statusMsg = ""
			a.statusErr = false
		}
		return a, nil

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.confirm.Active() || msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.current().Scroll(-1)
		return nil
	case tea.MouseButtonWheelDown:
		a.current().Scroll(1)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	at := actions.Point{X: msg.X, Y: msg.Y}
	open := a.openMenu()
	a.hub.PointerDown(at)

	if open != nil && open.IsOpen() {
		if idx, ok := open.ItemAt(at); ok {
			return a.choose(open, idx)
		}
		if open.TriggerRect().Contains(at) {
			open.ClickTrigger()
		}
		return nil
	}

	switch {
	case at.Y == 0:
		for i, r := range a.tabRects() {
			if r.Contains(at) && i != a.active {
				a.switchTab(i - a.active)
			}
		}
		return nil
	case at.Y < headerHeight:
		return a.current().SearchBar().SetActive(true)
	}

	a.current().SearchBar().SetActive(false)
	a.current().Click(at)
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirm.Active() {
		return a, a.confirm.Update(msg)
	}
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if m := a.openMenu(); m != nil {
		return a, a.handleMenuKey(m, msg)
	}

	search := a.current().SearchBar()
	if search.Active() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			return a, search.SetActive(false)
		}
		changed, cmd := search.Update(msg)
		if changed {
			a.current().ApplySearch()
		}
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.nextTab):
		a.switchTab(1)
		return a, nil
	case key.Matches(msg, a.keys.prevTab):
		a.switchTab(-1)
		return a, nil
	case key.Matches(msg, a.keys.search):
		return a, search.SetActive(true)
	case key.Matches(msg, a.keys.toggleHelp):
		a.help.ShowAll = !a.help.ShowAll
		a.resize()
		return a, nil
	}

	if status := a.current().HandleKey(msg, a.keys); status != "" {
		return a, a.setStatus(status, false)
	}
	return a, nil
}

func (a *App) handleMenuKey(m *actions.Menu, msg tea.KeyMsg) tea.Cmd {
	a.hub.KeyDown(msg.String())
	if !m.IsOpen() {
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.up):
		m.MoveHighlight(-1)
	case key.Matches(msg, a.keys.down):
		m.MoveHighlight(1)
	case key.Matches(msg, a.keys.choose):
		return a.choose(m, m.Highlight())
	default:
		for i, d := range m.Items() {
			if d.Shortcut != "" && strings.EqualFold(d.Shortcut, msg.String()) {
				return a.choose(m, i)
			}
		}
	}
	return nil
}

func (a *App) tabLabels() []string {
	labels := make([]string, len(a.tabs))
	for i, p := range a.tabs {
		if i == a.active {
			labels[i] = ActiveTabStyle.Render(p.Title())
		} else {
			labels[i] = InactiveTabStyle.Render(p.Title())
		}
	}
	return labels
}

func (a *App) tabRects() []actions.Rect {
	var rects []actions.Rect
	x := 1
	for _, l := range a.tabLabels() {
		w := lipgloss.Width(l)
		rects = append(rects, actions.Rect{X: x, Y: 0, W: w, H: 1})
		x += w + 1
	}
	return rects
}

func (a *App) footer() string {
	status := ""
	if a.statusMsg != "" {
		style := StatusBarStyle
		if a.statusErr {
			style = style.Background(lipgloss.Color(ColorDanger))
		}
		status = style.Render(a.statusMsg)
	}

	if !a.showHelp {
		return status
	}
	var help string
	if a.openMenu() != nil {
		help = a.help.ShortHelpView(a.keys.menuKeys())
	} else {
		help = a.help.View(a.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	p := a.current()
	body := strings.Join([]string{
		" " + strings.Join(a.tabLabels(), " "),
		p.SearchBar().View(),
		p.View(),
	}, "\n")

	footer := a.footer()
	bodyHeight := max(a.height-lipgloss.Height(footer), headerHeight)
	lines := splitLines(body)
	if len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}
	for len(lines) < bodyHeight {
		lines = append(lines, "")
	}
	body = strings.Join(lines, "\n")

	for _, m := range a.menus() {
		if !m.IsOpen() {
			continue
		}
		panel := measureMenu(m)
		r := m.PanelRect()
		body = overlayAt(body, panel, r.X, r.Y, a.width)
	}

	if a.confirm.Active() {
		dialog := a.confirm.View()
		x := max((a.width-lipgloss.Width(dialog))/2, 0)
		y := max((bodyHeight-lipgloss.Height(dialog))/2, 0)
		body = overlayAt(body, dialog, x, y, a.width)
	}

	if footer == "" {
		return body
	}
	return body + "\n" + footer
}

// StatusMsg shows a message that clears itself
type StatusMsg string

// PersistentStatusMsg shows a message until the next status replaces it
type PersistentStatusMsg string

type clearStatusMsg struct {
	gen int
}
