package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrMovieNotFound indicates the requested movie does not exist in the catalog
	ErrMovieNotFound = errors.New("movie not found")

	// ErrCatalogUnreachable indicates the catalog service is unreachable
	ErrCatalogUnreachable = errors.New("catalog service is unreachable")

	// ErrInvalidAPIKey indicates the catalog rejected the configured API key
	ErrInvalidAPIKey = errors.New("catalog API key is invalid")

	// ErrMalformedResponse indicates the catalog returned a payload that
	// could not be decoded
	ErrMalformedResponse = errors.New("malformed catalog response")
)
