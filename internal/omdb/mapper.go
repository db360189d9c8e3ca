package omdb

import (
	"strconv"

	"github.com/dmaize/reel/internal/domain"
)

// notAvailable is the catalog's placeholder for missing field values
const notAvailable = "N/A"

// MapSearchPage converts a successful search envelope to a domain page.
// An unparseable totalResults falls back to the page's own length.
func MapSearchPage(resp SearchResponse) domain.SearchPage {
	results := make([]domain.MovieSummary, 0, len(resp.Search))
	for _, r := range resp.Search {
		results = append(results, mapSummary(r))
	}

	total, err := strconv.Atoi(resp.TotalResults)
	if err != nil {
		total = len(results)
	}

	return domain.SearchPage{Results: results, TotalCount: total}
}

// mapSummary converts a single search row to a domain summary
func mapSummary(r SearchResult) domain.MovieSummary {
	return domain.MovieSummary{
		ID:        r.ImdbID,
		Title:     r.Title,
		Year:      r.Year,
		PosterURL: mapPoster(r.Poster),
	}
}

// MapMovieDetail converts a successful detail payload to a domain record.
// The rating stays a string; "N/A" is a valid value throughout.
func MapMovieDetail(resp DetailResponse) domain.MovieDetail {
	return domain.MovieDetail{
		MovieSummary: domain.MovieSummary{
			ID:        resp.ImdbID,
			Title:     resp.Title,
			Year:      resp.Year,
			PosterURL: mapPoster(resp.Poster),
		},
		Rating:        resp.ImdbRating,
		RuntimeLabel:  resp.Runtime,
		ContentRating: resp.Rated,
		Genres:        resp.Genre,
		Director:      resp.Director,
		Cast:          resp.Actors,
		PlotSummary:   resp.Plot,
	}
}

// mapPoster normalizes the catalog's missing-poster placeholder to the
// domain sentinel
func mapPoster(poster string) string {
	if poster == "" || poster == notAvailable {
		return domain.PosterUnavailable
	}
	return poster
}
