package domain

import (
	"fmt"
	"strconv"
)

// PosterUnavailable is the sentinel PosterURL value when the catalog has no
// poster for a movie.
const PosterUnavailable = "unavailable"

// SearchPageSize is the number of results per page in the catalog's search
// contract. The service always returns pages of this size (except the last).
const SearchPageSize = 10

// MovieSummary is the minimal movie record shown in list views and stored
// as a favorite. Identity key is ID; summaries are immutable once fetched.
type MovieSummary struct {
	ID        string `json:"id"`        // Catalog identifier (opaque)
	Title     string `json:"title"`     // Display title
	Year      string `json:"year"`      // Display label, not necessarily numeric ("2010", "2015–2019")
	PosterURL string `json:"posterUrl"` // Poster image URL, or PosterUnavailable
}

// DisplayTitle returns the title with the year label appended when present
func (m MovieSummary) DisplayTitle() string {
	if m.Year == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}

// MovieDetail is the full record shown on the detail screen. It is fetched
// fresh per view and never persisted.
type MovieDetail struct {
	MovieSummary

	Rating        string // 0-10 scale with one decimal, or "N/A"
	RuntimeLabel  string // e.g. "142 min"
	ContentRating string // e.g. "PG-13", "R"
	Genres        string // Comma-joined
	Director      string
	Cast          string // Comma-joined
	PlotSummary   string
}

// RatingValue parses the rating for numeric comparison (color thresholds).
// Returns false for "N/A" or anything else unparseable.
func (d MovieDetail) RatingValue() (float64, bool) {
	v, err := strconv.ParseFloat(d.Rating, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SearchPage is one page of catalog search results. A "no results" reply
// from the catalog is a valid zero-value page carrying the upstream message,
// distinct from a transport error.
type SearchPage struct {
	Results    []MovieSummary
	TotalCount int    // Total matches across all pages
	Message    string // Upstream message on empty pages (e.g. "Movie not found!")
}

// IsEmpty returns true when the page carries no results
func (p SearchPage) IsEmpty() bool {
	return len(p.Results) == 0
}
