package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/log"
)

const searchPageBody = `{
	"Search": [
		{"Title": "Batman Begins", "Year": "2005", "imdbID": "tt0372784", "Type": "movie", "Poster": "https://img.example.com/batman-begins.jpg"},
		{"Title": "Batman Returns", "Year": "1992", "imdbID": "tt0103776", "Type": "movie", "Poster": "N/A"}
	],
	"totalResults": "23",
	"Response": "True"
}`

const detailBody = `{
	"Title": "Inception",
	"Year": "2010",
	"Rated": "PG-13",
	"Runtime": "148 min",
	"Genre": "Action, Adventure, Sci-Fi",
	"Director": "Christopher Nolan",
	"Actors": "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page",
	"Plot": "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
	"Poster": "https://img.example.com/inception.jpg",
	"imdbRating": "8.8",
	"imdbID": "tt1375666",
	"Response": "True"
}`

func TestSearchMovies(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantPage domain.SearchPage
		wantErr  error
	}{
		{
			name: "maps a result page",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(searchPageBody))
			},
			wantPage: domain.SearchPage{
				Results: []domain.MovieSummary{
					{ID: "tt0372784", Title: "Batman Begins", Year: "2005", PosterURL: "https://img.example.com/batman-begins.jpg"},
					{ID: "tt0103776", Title: "Batman Returns", Year: "1992", PosterURL: domain.PosterUnavailable},
				},
				TotalCount: 23,
			},
		},
		{
			name: "no results is an empty page with the upstream message, not an error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			},
			wantPage: domain.SearchPage{Message: "Movie not found!"},
		},
		{
			name: "rejected key via status code",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			},
			wantErr: domain.ErrInvalidAPIKey,
		},
		{
			name: "rejected key with OK status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			},
			wantErr: domain.ErrInvalidAPIKey,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>bad gateway</html>`))
			},
			wantErr: domain.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "test-key", log.NullLogger())
			got, err := client.SearchMovies(context.Background(), "batman", 1)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SearchMovies() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SearchMovies() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantPage, got); diff != "" {
				t.Errorf("SearchMovies() page mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchMoviesSendsWireParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(searchPageBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", log.NullLogger())
	if _, err := client.SearchMovies(context.Background(), "batman", 2); err != nil {
		t.Fatalf("SearchMovies() unexpected error: %v", err)
	}

	want := url.Values{
		"apikey": {"test-key"},
		"s":      {"batman"},
		"page":   {"2"},
	}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("request query mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMoviesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "test-key", log.NullLogger())
	_, err := client.SearchMovies(context.Background(), "batman", 1)
	if !errors.Is(err, domain.ErrCatalogUnreachable) {
		t.Fatalf("SearchMovies() error = %v, want %v", err, domain.ErrCatalogUnreachable)
	}
}

func TestGetMovieDetail(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantDetail domain.MovieDetail
		wantErr    error
	}{
		{
			name: "maps the full record",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(detailBody))
			},
			wantDetail: domain.MovieDetail{
				MovieSummary: domain.MovieSummary{
					ID:        "tt1375666",
					Title:     "Inception",
					Year:      "2010",
					PosterURL: "https://img.example.com/inception.jpg",
				},
				Rating:        "8.8",
				RuntimeLabel:  "148 min",
				ContentRating: "PG-13",
				Genres:        "Action, Adventure, Sci-Fi",
				Director:      "Christopher Nolan",
				Cast:          "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page",
				PlotSummary:   "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
			},
		},
		{
			name: "unknown id",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
			},
			wantErr: domain.ErrMovieNotFound,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Title": `))
			},
			wantErr: domain.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "test-key", log.NullLogger())
			got, err := client.GetMovieDetail(context.Background(), "tt1375666")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("GetMovieDetail() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetMovieDetail() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantDetail, got); diff != "" {
				t.Errorf("GetMovieDetail() detail mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetMovieDetailSendsWireParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(detailBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", log.NullLogger())
	if _, err := client.GetMovieDetail(context.Background(), "tt1375666"); err != nil {
		t.Fatalf("GetMovieDetail() unexpected error: %v", err)
	}

	want := url.Values{
		"apikey": {"test-key"},
		"i":      {"tt1375666"},
		"plot":   {"full"},
	}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("request query mismatch (-want +got):\n%s", diff)
	}
}

func TestVerifyKey(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "accepted key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(searchPageBody))
			},
		},
		{
			name: "rejected key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			},
			wantErr: domain.ErrInvalidAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "test-key", log.NullLogger())
			err := client.VerifyKey(context.Background())

			if tt.wantErr == nil && err != nil {
				t.Fatalf("VerifyKey() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("VerifyKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
