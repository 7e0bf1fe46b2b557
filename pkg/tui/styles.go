package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/inkpress/inkpress-admin/pkg/actions"
	"github.com/inkpress/inkpress-admin/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorVeryDim  = "242" // Even dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorBorder   = "243" // Border gray
	ColorPrimary  = "33"  // Blue for primary actions
)

// Common styles
var (
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Padding(0, 1)

	EmptyTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	EmptyHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	TriggerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true)

	OpenTriggerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorActive)).
				Bold(true)

	BulkTriggerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary)).
				Padding(0, 1)

	MenuPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	MenuHighlightStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorSelected)).
				Bold(true)

	MenuDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Faint(true)

	MenuSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorBorder))

	ShortcutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	MenuBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDark)).
			Background(lipgloss.Color(ColorWarning)).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// VariantStyle tints a menu entry by its variant
func VariantStyle(v actions.Variant) lipgloss.Style {
	switch v {
	case actions.VariantDestructive:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))
	case actions.VariantSuccess:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	case actions.VariantWarning:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	default:
		return NormalStyle
	}
}

// Badge renders a vocabulary term as a coloured pill
func Badge(t models.Term) string {
	label := t.Label
	if t.Icon != "" {
		label = t.Icon + " " + label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(t.Color)).
		Foreground(lipgloss.Color(ColorDark)).
		Padding(0, 1).
		Render(label)
}
