package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/inkpress/inkpress-admin/pkg/actions"
)

// renderMenuPanel draws an open menu's entries inside a bordered panel.
// Each entry takes one line so panel rows map directly onto entries.
func renderMenuPanel(m *actions.Menu) string {
	items := m.Items()
	if len(items) == 0 {
		return MenuPanelStyle.Render(DescriptionStyle.Render("No actions"))
	}

	type parts struct{ left, right string }
	rows := make([]parts, len(items))
	inner := 0
	for i, d := range items {
		if d.Separator {
			continue
		}
		left := "  "
		if d.Icon != "" {
			left += d.Icon + " "
		}
		left += d.DisplayLabel()

		var right []string
		if d.Badge != "" {
			right = append(right, MenuBadgeStyle.Render(d.Badge))
		}
		if d.Shortcut != "" {
			right = append(right, ShortcutStyle.Render(d.Shortcut))
		}
		rows[i] = parts{left: left, right: strings.Join(right, " ")}

		w := ansi.StringWidth(left)
		if rows[i].right != "" {
			w += 2 + ansi.StringWidth(rows[i].right)
		}
		if w > inner {
			inner = w
		}
	}

	lines := make([]string, len(items))
	for i, d := range items {
		if d.Separator {
			lines[i] = MenuSeparatorStyle.Render(strings.Repeat("─", inner))
			continue
		}

		left := rows[i].left
		if i == m.Highlight() {
			left = "▸" + left[1:]
		}
		gap := inner - ansi.StringWidth(left) - ansi.StringWidth(rows[i].right)
		pad := strings.Repeat(" ", max(gap, 0))

		style := VariantStyle(d.EffectiveVariant())
		switch {
		case d.Disabled:
			style = MenuDisabledStyle
		case i == m.Highlight():
			style = MenuHighlightStyle.Inherit(style)
		}
		line := style.Render(left) + pad + rows[i].right

		lines[i] = line
	}

	return MenuPanelStyle.Render(strings.Join(lines, "\n"))
}

// measureMenu records the rendered panel size on the menu for hit-testing
func measureMenu(m *actions.Menu) string {
	panel := renderMenuPanel(m)
	m.SetPanelSize(lipgloss.Width(panel), lipgloss.Height(panel))
	return panel
}

// renderTrigger draws a menu trigger glyph in its open or closed style
func renderTrigger(m *actions.Menu) string {
	glyph := " " + m.Kind().Glyph(m.IsOpen()) + " "
	switch {
	case m.Disabled:
		return MenuDisabledStyle.Render(glyph)
	case m.IsOpen():
		return OpenTriggerStyle.Render(glyph)
	default:
		return TriggerStyle.Render(glyph)
	}
}
