package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string   // Title shown above the message
	Message     string   // Main confirmation message
	Warning     string   // Optional warning text (shown in orange)
	Details     []string // Optional detail lines, e.g. affected records
	Destructive bool     // If true, Yes is red, No is green
	YesLabel    string   // Custom label for Yes (default: "Yes")
	NoLabel     string   // Custom label for No (default: "No")
	Width       int
}

// ConfirmationModel asks a yes/no question before an irreversible action
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the confirmation dialog
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	contentWidth := width - 4

	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning)).Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	if m.config.Message != "" {
		b.WriteString(center.Render(wordwrap.String(m.config.Message, contentWidth)))
		b.WriteString("\n")
	}
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render(m.config.Warning)))
		b.WriteString("\n")
	}
	if len(m.config.Details) > 0 {
		b.WriteString("\n")
		for _, detail := range m.config.Details {
			b.WriteString(DescriptionStyle.Render("  • " + detail))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	labels := fmt.Sprintf("(%s / %s)", strings.ToLower(m.config.YesLabel), strings.ToLower(m.config.NoLabel))
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive) + "  " + labels))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1).
		Width(width).
		Render(b.String())
}

// formatConfirmOptions renders the y/n keys, red yes for destructive prompts
func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorSuccess))
	no := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorDanger))
	if destructive {
		yes, no = no, yes
	}
	return "[" + yes.Render("y") + "/" + no.Render("n") + "]"
}
