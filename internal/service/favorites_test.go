package service

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/log"
)

type fakeFavoritesRepo struct {
	loadFunc func() []domain.MovieSummary
	saveFunc func(list []domain.MovieSummary) error
}

func (f *fakeFavoritesRepo) Load() []domain.MovieSummary {
	return f.loadFunc()
}

func (f *fakeFavoritesRepo) Save(list []domain.MovieSummary) error {
	return f.saveFunc(list)
}

// newMemRepo returns a repo backed by a plain slice, seeded with the given
// favorites
func newMemRepo(seed []domain.MovieSummary) *fakeFavoritesRepo {
	stored := seed
	r := &fakeFavoritesRepo{}
	r.loadFunc = func() []domain.MovieSummary { return stored }
	r.saveFunc = func(list []domain.MovieSummary) error {
		stored = list
		return nil
	}
	return r
}

var (
	matrix    = domain.MovieSummary{ID: "tt0133093", Title: "The Matrix", Year: "1999"}
	inception = domain.MovieSummary{ID: "tt1375666", Title: "Inception", Year: "2010"}
	darkImdb  = domain.MovieSummary{ID: "tt0468569", Title: "The Dark Knight", Year: "2008"}
)

func TestToggleAddsAndRemoves(t *testing.T) {
	svc := NewFavoritesService(newMemRepo(nil), log.NullLogger())

	// First toggle on an empty list adds
	isFav, err := svc.Toggle(matrix)
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if !isFav {
		t.Error("Toggle() = false, want true after adding")
	}
	if got := svc.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	if !svc.IsFavorite(matrix.ID) {
		t.Error("IsFavorite() = false after adding")
	}

	// Second toggle removes
	isFav, err = svc.Toggle(matrix)
	if err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	if isFav {
		t.Error("Toggle() = true, want false after removing")
	}
	if got := svc.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	svc := NewFavoritesService(newMemRepo([]domain.MovieSummary{matrix, inception, darkImdb}), log.NullLogger())

	// Removing from the middle closes the gap
	if _, err := svc.Toggle(inception); err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	want := []domain.MovieSummary{matrix, darkImdb}
	if diff := cmp.Diff(want, svc.All()); diff != "" {
		t.Fatalf("All() after removal mismatch (-want +got):\n%s", diff)
	}

	// Re-adding appends at the end, not the old position
	if _, err := svc.Toggle(inception); err != nil {
		t.Fatalf("Toggle() error: %v", err)
	}
	want = []domain.MovieSummary{matrix, darkImdb, inception}
	if diff := cmp.Diff(want, svc.All()); diff != "" {
		t.Errorf("All() after re-add mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleWriteFailure(t *testing.T) {
	errDisk := errors.New("disk full")

	tests := []struct {
		name     string
		seed     []domain.MovieSummary
		movie    domain.MovieSummary
		wantFav  bool
		wantSize int
	}{
		{
			// A failed add leaves the movie out
			name:     "failed add",
			seed:     nil,
			movie:    matrix,
			wantFav:  false,
			wantSize: 0,
		},
		{
			// A failed removal keeps the movie in
			name:     "failed removal",
			seed:     []domain.MovieSummary{matrix},
			movie:    matrix,
			wantFav:  true,
			wantSize: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeFavoritesRepo{
				loadFunc: func() []domain.MovieSummary { return tt.seed },
				saveFunc: func(list []domain.MovieSummary) error { return errDisk },
			}
			svc := NewFavoritesService(repo, log.NullLogger())

			isFav, err := svc.Toggle(tt.movie)
			if !errors.Is(err, errDisk) {
				t.Fatalf("Toggle() error = %v, want %v", err, errDisk)
			}
			if isFav != tt.wantFav {
				t.Errorf("Toggle() = %v, want %v (the stored state)", isFav, tt.wantFav)
			}
			if got := svc.Count(); got != tt.wantSize {
				t.Errorf("Count() = %d, want %d", got, tt.wantSize)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	svc := NewFavoritesService(newMemRepo([]domain.MovieSummary{matrix, inception, darkImdb}), log.NullLogger())

	want := []FavoriteMatch{{Movie: matrix}, {Movie: inception}, {Movie: darkImdb}}
	if diff := cmp.Diff(want, svc.Filter("")); diff != "" {
		t.Errorf("Filter(\"\") mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, svc.Filter("   ")); diff != "" {
		t.Errorf("Filter(blank) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterMatchesAndHighlights(t *testing.T) {
	svc := NewFavoritesService(newMemRepo([]domain.MovieSummary{matrix, inception, darkImdb}), log.NullLogger())

	got := svc.Filter("dark")
	if len(got) != 1 {
		t.Fatalf("Filter(dark) returned %d matches, want 1", len(got))
	}
	if got[0].Movie.ID != darkImdb.ID {
		t.Errorf("Filter(dark) matched %q", got[0].Movie.Title)
	}
	// "dark" sits at rune positions 4-7 of "The Dark Knight"
	if diff := cmp.Diff([]int{4, 5, 6, 7}, got[0].MatchedIndexes); diff != "" {
		t.Errorf("MatchedIndexes mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterTypoTolerant(t *testing.T) {
	svc := NewFavoritesService(newMemRepo([]domain.MovieSummary{matrix, inception}), log.NullLogger())

	got := svc.Filter("matrx")
	if len(got) != 1 {
		t.Fatalf("Filter(matrx) returned %d matches, want 1", len(got))
	}
	if got[0].Movie.ID != matrix.ID {
		t.Errorf("Filter(matrx) matched %q, want The Matrix", got[0].Movie.Title)
	}
}
