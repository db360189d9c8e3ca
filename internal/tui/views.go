package tui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/tui/styles"
)

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return styles.SpinnerStyle.Render(frames[frame%len(frames)])
}

// statusForError converts catalog failures into footer-sized guidance
func statusForError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return "The catalog rejected the API key. Press ctrl+r to reset it."
	case errors.Is(err, domain.ErrCatalogUnreachable):
		return "Can't reach the catalog. Press r to retry."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "The catalog sent an unreadable response. Press r to retry."
	case errors.Is(err, domain.ErrMovieNotFound):
		return "The catalog has no record for that movie."
	default:
		return err.Error()
	}
}

// viewSearchScreen stacks the query bar over the result list
func (m Model) viewSearchScreen() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.SearchBar.View(),
		m.ResultList.View(),
	)
}

// viewFavoritesScreen stacks the filter bar over the favorites list
func (m Model) viewFavoritesScreen() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.FavFilter.View(),
		m.FavList.View(),
	)
}

// viewDetailScreen fills the content area with the inspector
func (m Model) viewDetailScreen() string {
	return m.Inspector.View()
}
