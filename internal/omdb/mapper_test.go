package omdb

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dmaize/reel/internal/domain"
)

func TestMapSearchPageTotalFallback(t *testing.T) {
	// An unparseable totalResults must not sink the page; the page's own
	// length stands in for the total
	tests := []struct {
		name         string
		totalResults string
		wantTotal    int
	}{
		{name: "parseable total wins", totalResults: "523", wantTotal: 523},
		{name: "empty total falls back to page length", totalResults: "", wantTotal: 2},
		{name: "non-numeric total falls back to page length", totalResults: "many", wantTotal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := SearchResponse{
				Response:     "True",
				TotalResults: tt.totalResults,
				Search: []SearchResult{
					{Title: "Heat", Year: "1995", ImdbID: "tt0113277", Poster: "https://img.example.com/heat.jpg"},
					{Title: "Heat", Year: "1986", ImdbID: "tt0091188", Poster: "N/A"},
				},
			}

			got := MapSearchPage(resp)
			if got.TotalCount != tt.wantTotal {
				t.Errorf("MapSearchPage() TotalCount = %d, want %d", got.TotalCount, tt.wantTotal)
			}
			if len(got.Results) != 2 {
				t.Fatalf("MapSearchPage() len(Results) = %d, want 2", len(got.Results))
			}
		})
	}
}

func TestMapPoster(t *testing.T) {
	tests := []struct {
		name   string
		poster string
		want   string
	}{
		{name: "real url passes through", poster: "https://img.example.com/p.jpg", want: "https://img.example.com/p.jpg"},
		{name: "N/A becomes the sentinel", poster: "N/A", want: domain.PosterUnavailable},
		{name: "empty becomes the sentinel", poster: "", want: domain.PosterUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPoster(tt.poster); got != tt.want {
				t.Errorf("mapPoster(%q) = %q, want %q", tt.poster, got, tt.want)
			}
		})
	}
}

func TestMapMovieDetailKeepsNA(t *testing.T) {
	// "N/A" is a valid display value for every detail field except the
	// poster, which maps to the domain sentinel
	resp := DetailResponse{
		Response:   "True",
		Title:      "Obscure Short",
		Year:       "1921",
		Rated:      "N/A",
		Runtime:    "N/A",
		Genre:      "Short",
		Director:   "N/A",
		Actors:     "N/A",
		Plot:       "N/A",
		Poster:     "N/A",
		ImdbRating: "N/A",
		ImdbID:     "tt9999999",
	}

	want := domain.MovieDetail{
		MovieSummary: domain.MovieSummary{
			ID:        "tt9999999",
			Title:     "Obscure Short",
			Year:      "1921",
			PosterURL: domain.PosterUnavailable,
		},
		Rating:        "N/A",
		RuntimeLabel:  "N/A",
		ContentRating: "N/A",
		Genres:        "Short",
		Director:      "N/A",
		Cast:          "N/A",
		PlotSummary:   "N/A",
	}

	if diff := cmp.Diff(want, MapMovieDetail(resp)); diff != "" {
		t.Errorf("MapMovieDetail() mismatch (-want +got):\n%s", diff)
	}
}
