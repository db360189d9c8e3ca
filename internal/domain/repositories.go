package domain

import (
	"context"
)

// CatalogRepository provides access to the remote movie catalog.
// Implementations are stateless request/response wrappers: no caching,
// no retries, cancellation only via ctx.
type CatalogRepository interface {
	// SearchMovies returns one page of search results for the query.
	// Pages are SearchPageSize items; page numbering starts at 1.
	// A catalog "no results" reply is returned as an empty SearchPage with
	// a nil error, distinct from transport failures.
	SearchMovies(ctx context.Context, query string, page int) (SearchPage, error)

	// GetMovieDetail returns the full record for a single movie.
	// Returns ErrMovieNotFound when the catalog has no such ID.
	GetMovieDetail(ctx context.Context, id string) (MovieDetail, error)
}

// FavoritesRepository is the persistence boundary for the favorites list.
// There is no partial-update API: callers read the whole list, mutate in
// memory, and write the whole list back.
type FavoritesRepository interface {
	// Load returns the stored favorites list. Missing or undecodable data
	// yields an empty list, never an error.
	Load() []MovieSummary

	// Save replaces the stored list with the given one
	Save(list []MovieSummary) error
}
