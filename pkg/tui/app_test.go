package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

func newTestApp(t *testing.T) (*App, *workflow.Desk) {
	t.Helper()
	desk := workflow.NewDesk(workflow.SampleManuscripts(), workflow.SampleUsers(),
		workflow.WithClipboard(func(string) error { return nil }))
	app := NewApp(Config{Desk: desk, MenuPosition: actions.BottomRight, ShowHelp: true})
	app.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return app, desk
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(app *App, keys ...string) {
	for _, k := range keys {
		app.Update(keyMsg(k))
	}
}

func click(app *App, x, y int) {
	// render first so panels are measured the way the user sees them
	app.View()
	app.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func manuscriptTab(t *testing.T, app *App) *recordTab[models.Manuscript] {
	t.Helper()
	tab, ok := app.tabs[0].(*recordTab[models.Manuscript])
	if !ok {
		t.Fatalf("first tab is %T", app.tabs[0])
	}
	return tab
}

func TestAppBulkUpdateStatusThroughPicker(t *testing.T) {
	app, desk := newTestApp(t)

	press(app, "a", "b")
	if app.openMenu() == nil {
		t.Fatal("bulk menu should be open")
	}

	// assign_reviewer, update_status
	press(app, "down", "enter")
	if app.picker == nil || !app.picker.IsOpen() {
		t.Fatal("missing status should open the picker")
	}
	if manuscriptTab(t, app).bulk.IsOpen() {
		t.Error("bulk menu should close after dispatch")
	}

	// submitted, under_review, revision_requested, accepted
	press(app, "down", "down", "down", "enter")
	for _, m := range desk.Manuscripts() {
		if m.Status != models.StatusAccepted {
			t.Errorf("%s status = %q, want accepted", m.ID, m.Status)
		}
	}
	if !strings.Contains(app.statusMsg, "marked Accepted") {
		t.Errorf("status = %q", app.statusMsg)
	}
	if got := manuscriptTab(t, app).table.Selection().Len(); got != 5 {
		t.Errorf("selection should survive the action, got %d", got)
	}
	if app.hub.Active() != 0 {
		t.Errorf("listeners leaked: %d", app.hub.Active())
	}
}

func TestAppAssignReviewerOffersActiveReviewers(t *testing.T) {
	app, desk := newTestApp(t)

	press(app, " ", "b", "enter")
	if app.picker == nil {
		t.Fatal("picker not opened")
	}
	items := app.picker.Items()
	if items[0].Label != "Dr. Michael Chen" {
		t.Errorf("first reviewer = %q", items[0].Label)
	}

	press(app, "enter")
	m := desk.Manuscripts()[2]
	if m.ID != "MS-2024-003" || m.Reviewer != "Dr. Michael Chen" || m.Status != models.StatusUnderReview {
		t.Errorf("unexpected manuscript after assignment: %+v", m)
	}
}

func TestAppPickerCancel(t *testing.T) {
	app, desk := newTestApp(t)

	press(app, " ", "b", "down", "enter")
	press(app, "esc")
	if app.picker.IsOpen() {
		t.Error("escape should dismiss the picker")
	}
	if desk.LastResult().ActionID != "" {
		t.Error("nothing should be applied")
	}
}

func TestAppDeleteAsksForConfirmation(t *testing.T) {
	app, desk := newTestApp(t)

	// select the newest manuscript and pick Delete Selected
	press(app, " ", "b", "down", "down", "down", "enter")
	if !app.confirm.Active() {
		t.Fatal("delete should ask for confirmation")
	}
	if !strings.Contains(app.View(), "Delete 1 manuscript(s)?") {
		t.Error("dialog should name the target count")
	}

	press(app, "n")
	if len(desk.Manuscripts()) != 5 {
		t.Fatal("cancelled delete removed records")
	}
	if app.statusMsg != "Delete cancelled" {
		t.Errorf("status = %q", app.statusMsg)
	}

	press(app, "b", "down", "down", "down", "enter", "y")
	if len(desk.Manuscripts()) != 4 {
		t.Fatalf("expected 4 manuscripts, got %d", len(desk.Manuscripts()))
	}
	for _, m := range desk.Manuscripts() {
		if m.ID == "MS-2024-003" {
			t.Error("deleted manuscript still present")
		}
	}
}

func TestAppRowMenuByMouse(t *testing.T) {
	app, desk := newTestApp(t)
	tab := manuscriptTab(t, app)

	menu := tab.rowMenus["MS-2024-003"]
	if menu == nil {
		t.Fatal("no row menu for the first row")
	}
	trigger := menu.TriggerRect()
	click(app, trigger.X+1, trigger.Y)
	if !menu.IsOpen() {
		t.Fatal("trigger click should open the row menu")
	}

	app.View()
	panel := menu.PanelRect()
	reject := -1
	for i, d := range menu.Items() {
		if d.ID == workflow.ActionReject {
			reject = i
		}
	}
	click(app, panel.X+2, panel.Y+1+reject)

	if menu.IsOpen() {
		t.Error("menu should close after choosing")
	}
	if got := desk.Manuscripts()[2].Status; got != models.StatusRejected {
		t.Errorf("status = %q, want rejected", got)
	}
}

func TestAppOutsideClickClosesMenu(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, ".")
	if app.openMenu() == nil {
		t.Fatal("row menu should open from the keyboard")
	}
	click(app, 0, 30)
	if app.openMenu() != nil {
		t.Error("outside click should close the menu")
	}
	if app.hub.Active() != 0 {
		t.Errorf("listeners leaked: %d", app.hub.Active())
	}
}

func TestAppSecondTriggerClosesFirst(t *testing.T) {
	app, _ := newTestApp(t)
	tab := manuscriptTab(t, app)

	// bottom-right panels open below their trigger, so a row above the
	// first menu is never covered by its panel
	first := tab.rowMenus["MS-2024-004"]
	second := tab.rowMenus["MS-2024-003"]
	click(app, first.TriggerRect().X, first.TriggerRect().Y)
	if !first.IsOpen() {
		t.Fatal("first menu should open")
	}
	if first.PanelRect().Contains(actions.Point{X: second.TriggerRect().X, Y: second.TriggerRect().Y}) {
		t.Fatalf("second trigger %+v is under the first panel %+v", second.TriggerRect(), first.PanelRect())
	}
	click(app, second.TriggerRect().X, second.TriggerRect().Y)

	if first.IsOpen() {
		t.Error("first menu should close")
	}
	if !second.IsOpen() {
		t.Error("second menu should open")
	}
	if app.hub.Active() != 1 {
		t.Errorf("expected one listener pair, got %d", app.hub.Active())
	}
}

func TestAppCheckboxClicks(t *testing.T) {
	app, _ := newTestApp(t)
	tab := manuscriptTab(t, app)

	// header row sits below the toolbar
	click(app, cursorWidth, headerHeight+1)
	if tab.table.Selection().Len() != 5 {
		t.Fatalf("header checkbox should select all, got %d", tab.table.Selection().Len())
	}
	click(app, cursorWidth, headerHeight+1)
	if tab.table.Selection().Len() != 0 {
		t.Fatal("header checkbox should clear")
	}

	click(app, cursorWidth+1, headerHeight+3)
	if !tab.table.Selection().Contains("MS-2024-001") {
		t.Errorf("second row checkbox should select MS-2024-001, got %v", tab.table.Selection().IDs())
	}
}

func TestAppSearchNarrowsRows(t *testing.T) {
	app, _ := newTestApp(t)
	tab := manuscriptTab(t, app)

	press(app, "/")
	if !tab.search.Active() {
		t.Fatal("search should be focused")
	}
	press(app, "j", "o", "h", "n")
	if got := len(tab.visible()); got != 1 {
		t.Errorf("john should match one manuscript, got %d", got)
	}
	press(app, "esc")
	if tab.search.Active() {
		t.Error("escape should blur the search")
	}

	press(app, "x")
	if got := len(tab.visible()); got != 5 {
		t.Errorf("clear should restore all rows, got %d", got)
	}
}

func TestAppSearchFilterSyntax(t *testing.T) {
	app, _ := newTestApp(t)
	tab := manuscriptTab(t, app)

	press(app, "/")
	for _, r := range "status:accepted" {
		press(app, string(r))
	}
	rows := tab.visible()
	if len(rows) != 1 || rows[0].ID != "MS-2024-004" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestAppTabSwitchClosesMenus(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "a", "b")
	if app.hub.Active() != 1 {
		t.Fatal("bulk menu should hold one listener pair")
	}
	// the menu swallows tab, so close it first
	press(app, "esc", "tab")
	if app.active != 1 {
		t.Fatalf("active tab = %d", app.active)
	}

	press(app, ".", "tab")
	if app.hub.Active() != 1 || app.active != 1 {
		t.Error("open menu keeps keys")
	}
	app.switchTab(1)
	if app.hub.Active() != 0 {
		t.Errorf("switching tabs should release menu listeners, got %d", app.hub.Active())
	}
	press(app, "tab")
	if app.active != 0 {
		t.Errorf("tabs should wrap, got %d", app.active)
	}
}

func TestAppBulkMenuNeedsSelection(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "b")
	if app.openMenu() != nil {
		t.Error("bulk menu should not open without a selection")
	}
	if app.statusMsg != "Select records first" {
		t.Errorf("status = %q", app.statusMsg)
	}
}

func TestAppMenuShortcut(t *testing.T) {
	app, desk := newTestApp(t)

	press(app, ".", "v")
	if app.openMenu() != nil {
		t.Error("shortcut should run and close the menu")
	}
	if desk.LastResult().ActionID != workflow.ActionView {
		t.Errorf("last action = %q", desk.LastResult().ActionID)
	}
}

func TestAppStatusMessages(t *testing.T) {
	tests := []struct {
		name       string
		msg        tea.Msg
		wantStatus string
		wantCmd    bool
	}{
		{name: "status schedules a clear", msg: StatusMsg("Saved"), wantStatus: "Saved", wantCmd: true},
		{name: "persistent status has no timer", msg: PersistentStatusMsg("Working"), wantStatus: "Working"},
		{name: "stale clear is ignored", msg: clearStatusMsg{gen: -1}, wantStatus: "previous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			app.statusMsg = "previous"

			_, cmd := app.Update(tt.msg)
			if app.statusMsg != tt.wantStatus {
				t.Errorf("status = %q, want %q", app.statusMsg, tt.wantStatus)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd = %v, want cmd %v", cmd != nil, tt.wantCmd)
			}
		})
	}
}

func TestAppClearStatusMatchesGeneration(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(StatusMsg("First"))
	first := app.statusGen
	app.Update(StatusMsg("Second"))

	app.Update(clearStatusMsg{gen: first})
	if app.statusMsg != "Second" {
		t.Errorf("old timer cleared the newer status: %q", app.statusMsg)
	}
	app.Update(clearStatusMsg{gen: app.statusGen})
	if app.statusMsg != "" {
		t.Errorf("status = %q, want empty", app.statusMsg)
	}
}

func TestAppViewRendersOpenMenu(t *testing.T) {
	app, _ := newTestApp(t)

	if !strings.Contains(app.View(), "Manuscripts (5)") {
		t.Error("tab bar missing")
	}
	press(app, ".")
	view := app.View()
	for _, want := range []string{"View Details", "Assign Reviewer", "Reject"} {
		if !strings.Contains(view, want) {
			t.Errorf("open menu should render %q", want)
		}
	}
}

func TestAppLoadingBeforeSize(t *testing.T) {
	app := NewApp(Config{})
	if app.View() != "Loading..." {
		t.Error("expected loading view before the first size message")
	}
}
