package tui

import (
	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/service"
)

// Message types for the TUI

// SearchResultsMsg carries one resolved catalog page. Req holds the
// request tag the fetch was issued for so the session can discard
// responses from an abandoned query.
type SearchResultsMsg struct {
	Req  service.SearchRequest
	Page domain.SearchPage
	Err  error
}

// DetailLoadedMsg signals that full movie metadata has been fetched
type DetailLoadedMsg struct {
	ID     string
	Detail domain.MovieDetail
	Err    error
}

// ToggleDoneMsg signals that a favorites write finished
type ToggleDoneMsg struct {
	Movie      domain.MovieSummary
	IsFavorite bool
	Err        error
}

// FavoritesLoadedMsg carries the persisted favorites list
type FavoritesLoadedMsg struct {
	Movies []domain.MovieSummary
}

// ResetDoneMsg signals that the stored API key was cleared
type ResetDoneMsg struct {
	Err error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
