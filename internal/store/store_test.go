package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	bolt "go.etcd.io/bbolt"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/log"
)

func sampleFavorites() []domain.MovieSummary {
	return []domain.MovieSummary{
		{ID: "tt0133093", Title: "The Matrix", Year: "1999", PosterURL: "https://img.example.com/matrix.jpg"},
		{ID: "tt1375666", Title: "Inception", Year: "2010", PosterURL: domain.PosterUnavailable},
		{ID: "tt0068646", Title: "The Godfather", Year: "1972", PosterURL: "https://img.example.com/godfather.jpg"},
	}
}

func TestFavoritesStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFavoritesStore(dir, log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() error: %v", err)
	}

	want := sampleFavorites()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Reopen to prove the list survived the process boundary, in order
	s, err = NewFavoritesStore(dir, log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() reopen error: %v", err)
	}
	defer s.Close()

	if diff := cmp.Diff(want, s.Load()); diff != "" {
		t.Errorf("Load() after reopen mismatch (-want +got):\n%s", diff)
	}
}

func TestFavoritesStoreEmptyOnFirstLoad(t *testing.T) {
	s, err := NewFavoritesStore(t.TempDir(), log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() error: %v", err)
	}
	defer s.Close()

	got := s.Load()
	if got == nil {
		t.Fatal("Load() = nil, want empty list")
	}
	if len(got) != 0 {
		t.Errorf("Load() len = %d, want 0", len(got))
	}
}

func TestFavoritesStoreCorruptPayload(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFavoritesStore(dir, log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() error: %v", err)
	}
	if err := s.Save(sampleFavorites()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	// Scribble over the stored payload behind the store's back
	db, err := bolt.Open(filepath.Join(dir, "favorites.db"), 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("bolt.Open() error: %v", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFavorites).Put(keyList, []byte(`{"not": "a list`))
	})
	if err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db.Close() error: %v", err)
	}

	// Corrupt data reads as an empty list, not an error
	s, err = NewFavoritesStore(dir, log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() reopen error: %v", err)
	}
	defer s.Close()

	if got := s.Load(); len(got) != 0 {
		t.Errorf("Load() with corrupt payload len = %d, want 0", len(got))
	}

	// And the store accepts writes again afterwards
	if err := s.Save(sampleFavorites()[:1]); err != nil {
		t.Errorf("Save() after corruption error: %v", err)
	}
}

func TestFavoritesStoreMemoryOnly(t *testing.T) {
	s, err := NewFavoritesStore("", log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() error: %v", err)
	}
	defer s.Close()

	want := sampleFavorites()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if diff := cmp.Diff(want, s.Load()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestFavoritesStoreLoadReturnsCopy(t *testing.T) {
	s, err := NewFavoritesStore(t.TempDir(), log.NullLogger())
	if err != nil {
		t.Fatalf("NewFavoritesStore() error: %v", err)
	}
	defer s.Close()

	if err := s.Save(sampleFavorites()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	first := s.Load()
	first[0].Title = "Scribbled"

	second := s.Load()
	if second[0].Title != "The Matrix" {
		t.Errorf("Load() leaked internal state: Title = %q", second[0].Title)
	}
}
