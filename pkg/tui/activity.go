package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/journal"
	"github.com/inkpress/inkpress-admin/pkg/workflow"
)

const activityLimit = 200

// activityPane lists journaled intents, newest first
type activityPane struct {
	source  func() ([]journal.Entry, error)
	entries []journal.Entry
	err     error
	search  *SearchBar

	cursor  int
	offset  int
	width   int
	height  int
	originY int
}

func newActivityPane(j *journal.Journal) *activityPane {
	p := &activityPane{search: NewSearchBar("Filter activity… (table, action or id)")}
	if j != nil {
		p.source = func() ([]journal.Entry, error) { return j.Recent("", activityLimit) }
	}
	p.Reload()
	return p
}

func (p *activityPane) Title() string { return "Activity" }

func (p *activityPane) SearchBar() *SearchBar { return p.search }

func (p *activityPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.search.SetWidth(width)
}

func (p *activityPane) SetOrigin(y int) { p.originY = y }

func (p *activityPane) Reload() {
	if p.source == nil {
		return
	}
	p.entries, p.err = p.source()
}

func (p *activityPane) ApplySearch() {
	p.cursor = 0
	p.offset = 0
}

func (p *activityPane) visible() []journal.Entry {
	term := strings.ToLower(strings.TrimSpace(p.search.Value()))
	if term == "" {
		return p.entries
	}
	var out []journal.Entry
	for _, e := range p.entries {
		haystack := strings.ToLower(e.Table + " " + e.Intent.ActionID + " " + strings.Join(e.Intent.TargetIDs, " "))
		if strings.Contains(haystack, term) {
			out = append(out, e)
		}
	}
	return out
}

func (p *activityPane) pageSize() int {
	return max(p.height-2, 1)
}

func (p *activityPane) move(delta int) {
	n := len(p.visible())
	p.cursor = min(max(p.cursor+delta, 0), max(n-1, 0))
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.pageSize() {
		p.offset = p.cursor - p.pageSize() + 1
	}
}

func (p *activityPane) HandleKey(msg tea.KeyMsg, keys keyMap) string {
	switch {
	case key.Matches(msg, keys.up):
		p.move(-1)
	case key.Matches(msg, keys.down):
		p.move(1)
	}
	return ""
}

func (p *activityPane) Click(at actions.Point) bool {
	row := at.Y - p.originY - 2
	if row < 0 || p.offset+row >= len(p.visible()) {
		return false
	}
	p.cursor = p.offset + row
	return true
}

func (p *activityPane) Scroll(delta int) { p.move(delta) }

func (p *activityPane) Menus() []*actions.Menu { return nil }

func (p *activityPane) Context(*actions.Menu) actions.Context { return actions.Context{} }

func (p *activityPane) CloseMenus() {}

func (p *activityPane) View() string {
	entries := p.visible()
	lines := []string{
		DescriptionStyle.Render(fmt.Sprintf(" %d recorded intent(s)", len(entries))),
		HeaderStyle.Render(fmt.Sprintf("  %-19s %-12s %-28s %s", "When", "Table", "Action", "Targets")),
	}

	switch {
	case p.source == nil:
		return strings.Join(append(lines, "", EmptyHintStyle.Render("  Activity journal is disabled")), "\n")
	case p.err != nil:
		return strings.Join(append(lines, "", ErrorStyle.Render("  "+p.err.Error())), "\n")
	case len(entries) == 0:
		return strings.Join(append(lines, "", EmptyTitleStyle.Render("  No activity yet")), "\n")
	}

	end := min(p.offset+p.pageSize(), len(entries))
	for i := p.offset; i < end; i++ {
		e := entries[i]
		action := e.Intent.ActionID
		if v := e.Intent.Args; len(v) > 0 {
			for _, name := range []string{workflow.ArgStatus, workflow.ArgReviewer} {
				if v[name] != "" {
					action += "=" + v[name]
				}
			}
		}
		line := fmt.Sprintf("%-19s %-12s %s %s",
			e.Intent.At.Local().Format("2006-01-02 15:04:05"),
			e.Table,
			fitCell(action, 28),
			strings.Join(e.Intent.TargetIDs, ", "),
		)
		if e.Failed() {
			line += ErrorStyle.Render("  ✗ " + e.Error)
		}
		if i == p.cursor {
			lines = append(lines, SelectedStyle.Render("▸ "+line))
		} else {
			lines = append(lines, NormalStyle.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}
