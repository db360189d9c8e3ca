package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmaize/reel/internal/tui/styles"
)

// SearchBar is a single-line query input pinned above a list
type SearchBar struct {
	input   textinput.Model
	width   int
	focused bool
}

// NewSearchBar creates the catalog search input
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// NewFilterBar creates the favorites filter input
func NewFilterBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

// Blur removes keyboard focus without clearing the query
func (s *SearchBar) Blur() {
	s.focused = false
	s.input.Blur()
}

// Focused returns true if the input has keyboard focus
func (s SearchBar) Focused() bool {
	return s.focused
}

// Value returns the current query text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// Reset clears the query text
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}

// SetWidth updates the component width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	inner := width - 6
	if inner < 10 {
		inner = 10
	}
	s.input.Width = inner
}

// Init initializes the component
func (s SearchBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the component
func (s SearchBar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}

	frameW, _ := style.GetFrameSize()
	return style.
		Width(s.width - frameW).
		Render(s.input.View())
}
