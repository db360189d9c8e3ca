package service

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/search"
)

// FavoriteMatch is one favorites filter hit with the matched title
// positions for highlighting
type FavoriteMatch struct {
	Movie          domain.MovieSummary
	MatchedIndexes []int
	Score          int
}

// FavoritesService coordinates favorite toggles between screen state and
// the persistent store. The store exposes no single-item upsert, so Toggle
// runs the whole read-modify-write cycle under one mutex.
type FavoritesService struct {
	repo   domain.FavoritesRepository
	logger *slog.Logger

	toggleMu sync.Mutex
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(repo domain.FavoritesRepository, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesService{
		repo:   repo,
		logger: logger,
	}
}

// All returns the stored favorites in insertion order
func (s *FavoritesService) All() []domain.MovieSummary {
	return s.repo.Load()
}

// IsFavorite reports membership by catalog ID
func (s *FavoritesService) IsFavorite(id string) bool {
	for _, m := range s.repo.Load() {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of stored favorites
func (s *FavoritesService) Count() int {
	return len(s.repo.Load())
}

// Toggle flips the movie's membership and returns the new state: present
// entries are removed closing the gap, absent ones are appended. The
// mutated list is written back whole; on write failure the stored list is
// unchanged and the error is returned so the caller can roll back any
// optimistic screen state.
func (s *FavoritesService) Toggle(movie domain.MovieSummary) (bool, error) {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	list := s.repo.Load()

	idx := -1
	for i, m := range list {
		if m.ID == movie.ID {
			idx = i
			break
		}
	}

	var next []domain.MovieSummary
	var isFavorite bool
	if idx >= 0 {
		next = make([]domain.MovieSummary, 0, len(list)-1)
		next = append(next, list[:idx]...)
		next = append(next, list[idx+1:]...)
		isFavorite = false
	} else {
		next = make([]domain.MovieSummary, 0, len(list)+1)
		next = append(next, list...)
		next = append(next, movie)
		isFavorite = true
	}

	if err := s.repo.Save(next); err != nil {
		s.logger.Error("favorites write failed", "movieID", movie.ID, "error", err)
		return !isFavorite, err
	}

	s.logger.Debug("favorite toggled", "movieID", movie.ID, "favorite", isFavorite, "count", len(next))
	return isFavorite, nil
}

// Filter fuzzy-matches the stored favorites against query, best match
// first. An empty query returns every favorite in insertion order.
func (s *FavoritesService) Filter(query string) []FavoriteMatch {
	list := s.repo.Load()

	if strings.TrimSpace(query) == "" {
		out := make([]FavoriteMatch, len(list))
		for i, m := range list {
			out[i] = FavoriteMatch{Movie: m}
		}
		return out
	}

	titles := make([]string, len(list))
	for i, m := range list {
		titles[i] = m.Title
	}

	matches := search.FuzzySearch(query, titles)

	out := make([]FavoriteMatch, len(matches))
	for i, match := range matches {
		out[i] = FavoriteMatch{
			Movie:          list[match.Index],
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}
	return out
}
