package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmaize/reel/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "Reel/1.0"
)

// Client implements domain.CatalogRepository against an OMDb-compatible
// catalog API. It is a stateless request/response wrapper: no caching,
// no retries, cancellation only via ctx.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET against the catalog.
// The API key travels as a query parameter and is kept out of logs.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	c.logger.Debug("catalog request",
		"s", query.Get("s"), "i", query.Get("i"), "page", query.Get("page"))

	query.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s/?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, domain.ErrCatalogUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrInvalidAPIKey
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// SearchMovies returns one page of search results for the query.
// A "no results" reply from the catalog comes back as an empty page carrying
// the upstream message, with a nil error.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (domain.SearchPage, error) {
	q := url.Values{}
	q.Set("s", query)
	q.Set("page", strconv.Itoa(page))

	body, err := c.doRequest(ctx, q)
	if err != nil {
		return domain.SearchPage{}, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return domain.SearchPage{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if !resp.OK() {
		if isInvalidKey(resp.Error) {
			return domain.SearchPage{}, domain.ErrInvalidAPIKey
		}
		c.logger.Debug("catalog search miss", "query", query, "page", page, "message", resp.Error)
		return domain.SearchPage{Message: resp.Error}, nil
	}

	return MapSearchPage(resp), nil
}

// GetMovieDetail returns the full record for a single movie
func (c *Client) GetMovieDetail(ctx context.Context, id string) (domain.MovieDetail, error) {
	q := url.Values{}
	q.Set("i", id)
	q.Set("plot", "full")

	body, err := c.doRequest(ctx, q)
	if err != nil {
		return domain.MovieDetail{}, err
	}

	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return domain.MovieDetail{}, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	if !resp.OK() {
		if isInvalidKey(resp.Error) {
			return domain.MovieDetail{}, domain.ErrInvalidAPIKey
		}
		c.logger.Debug("catalog detail miss", "id", id, "message", resp.Error)
		return domain.MovieDetail{}, domain.ErrMovieNotFound
	}

	return MapMovieDetail(resp), nil
}

// VerifyKey issues a minimal search probe to confirm the configured API key
// is accepted by the catalog. Used by the first-run setup flow.
func (c *Client) VerifyKey(ctx context.Context) error {
	_, err := c.SearchMovies(ctx, "test", 1)
	return err
}

// isInvalidKey recognizes the catalog's key-rejection message, which can
// arrive with a 200 status
func isInvalidKey(message string) bool {
	return strings.Contains(strings.ToLower(message), "invalid api key")
}
