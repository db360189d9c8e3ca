package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmaize/reel/internal/tui/styles"
)

// ConfirmModal is a yes/no prompt modal
type ConfirmModal struct {
	visible bool
	title   string
	prompt  string
}

// NewConfirmModal creates a new confirm modal
func NewConfirmModal() ConfirmModal {
	return ConfirmModal{}
}

// Show displays the modal with a title and prompt
func (m *ConfirmModal) Show(title, prompt string) {
	m.visible = true
	m.title = title
	m.prompt = prompt
}

// Hide dismisses the modal
func (m *ConfirmModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m ConfirmModal) IsVisible() bool {
	return m.visible
}

// Update handles input events, returns (modal, confirmed). The modal
// hides itself on any decisive key.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, bool) {
	if !m.visible {
		return m, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y", "enter":
			m.Hide()
			return m, true
		case "n", "N", "esc":
			m.Hide()
			return m, false
		}
	}

	return m, false
}

// View renders the confirm modal
func (m ConfirmModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 44

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	promptStyle := lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Width(modalWidth).
		Background(styles.SlateDark)

	helpStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	spacer := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark).
		Render("")

	help := styles.HelpKeyStyle.Render("y") + styles.HelpDescStyle.Render(" yes   ") +
		styles.HelpKeyStyle.Render("n") + styles.HelpDescStyle.Render(" no")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		spacer,
		promptStyle.Render(m.prompt),
		spacer,
		helpStyle.Render(help),
	)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gold).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(content)

	return modal
}
