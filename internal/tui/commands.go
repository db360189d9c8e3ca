package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmaize/reel/internal/config"
	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/service"
)

// Command factories for async operations

// SearchPageCmd fetches one catalog page for the given request. The
// request tag travels with the result so stale responses can be
// discarded by the session.
func SearchPageCmd(catalog domain.CatalogRepository, req service.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		page, err := catalog.SearchMovies(ctx, req.Query, req.Page)
		return SearchResultsMsg{Req: req, Page: page, Err: err}
	}
}

// LoadDetailCmd fetches full metadata for a movie
func LoadDetailCmd(catalog domain.CatalogRepository, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		detail, err := catalog.GetMovieDetail(ctx, id)
		return DetailLoadedMsg{ID: id, Detail: detail, Err: err}
	}
}

// ToggleFavoriteCmd flips a movie's favorites membership
func ToggleFavoriteCmd(svc *service.FavoritesService, movie domain.MovieSummary) tea.Cmd {
	return func() tea.Msg {
		isFavorite, err := svc.Toggle(movie)
		return ToggleDoneMsg{Movie: movie, IsFavorite: isFavorite, Err: err}
	}
}

// LoadFavoritesCmd reads the persisted favorites list
func LoadFavoritesCmd(svc *service.FavoritesService) tea.Cmd {
	return func() tea.Msg {
		return FavoritesLoadedMsg{Movies: svc.All()}
	}
}

// ResetKeyCmd clears the stored API key so the next launch re-runs setup
func ResetKeyCmd() tea.Cmd {
	return func() tea.Msg {
		return ResetDoneMsg{Err: config.ClearAPIKey()}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
