package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmaize/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketFavorites = []byte("favorites")
	keyList         = []byte("list")
)

// FavoritesStore implements domain.FavoritesRepository using BoltDB.
// The whole favorites list is serialized as one JSON array under a fixed
// key; there is no per-item API. Reads fail soft: anything missing or
// undecodable is an empty list.
type FavoritesStore struct {
	db     *bolt.DB
	logger *slog.Logger

	mu sync.RWMutex // Protects memory cache

	// In-memory copy of the decoded list, promoted on first read
	cached []domain.MovieSummary
	loaded bool
}

// NewFavoritesStore opens (or creates) the favorites database under dataDir.
// An empty dataDir yields a memory-only store (no persistence).
func NewFavoritesStore(dataDir string, logger *slog.Logger) (*FavoritesStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dataDir == "" {
		// Memory-only mode (no persistence)
		return &FavoritesStore{logger: logger}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, "favorites.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFavorites)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &FavoritesStore{db: db, logger: logger}, nil
}

func (s *FavoritesStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored favorites list. A missing value or a payload that
// fails to decode yields an empty list; decode failures are logged, never
// returned.
func (s *FavoritesStore) Load() []domain.MovieSummary {
	s.mu.RLock()
	if s.loaded {
		list := cloneList(s.cached)
		s.mu.RUnlock()
		return list
	}
	s.mu.RUnlock()

	list := s.readFromDB()

	// Promote to memory cache
	s.mu.Lock()
	s.cached = list
	s.loaded = true
	s.mu.Unlock()

	return cloneList(list)
}

// Save replaces the stored list. The memory cache is updated only after the
// write succeeds so a failed write leaves Load results unchanged.
func (s *FavoritesStore) Save(list []domain.MovieSummary) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}

	if s.db != nil {
		err = s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketFavorites)
			return b.Put(keyList, data)
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cached = cloneList(list)
	s.loaded = true
	s.mu.Unlock()

	return nil
}

func (s *FavoritesStore) readFromDB() []domain.MovieSummary {
	if s.db == nil {
		return []domain.MovieSummary{}
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketFavorites)
		if b == nil {
			return nil
		}
		if v := b.Get(keyList); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return []domain.MovieSummary{}
	}

	var list []domain.MovieSummary
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Error("favorites payload is corrupt, starting empty", "error", err)
		return []domain.MovieSummary{}
	}
	if list == nil {
		list = []domain.MovieSummary{}
	}
	return list
}

// cloneList copies the slice so callers can mutate their copy freely
func cloneList(list []domain.MovieSummary) []domain.MovieSummary {
	out := make([]domain.MovieSummary, len(list))
	copy(out, list)
	return out
}
