package service

import (
	"log/slog"
	"strings"

	"github.com/dmaize/reel/internal/domain"
)

// SessionState identifies where the search session is in its lifecycle
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionLoading
	SessionLoaded
	SessionFailed
)

// SearchRequest tags an outgoing page fetch with the query, page, and
// session generation it was issued for. Completions carrying a generation
// other than the active one are discarded, so a response for an abandoned
// query can never overwrite a newer session's state.
type SearchRequest struct {
	Query string
	Page  int
	Gen   int
}

// SearchSession owns the search screen's transient state: query text,
// current page, accumulated results, and the loading/error flags that drive
// incremental pagination. It performs no network calls itself; the caller
// executes the SearchRequests it hands out and feeds each outcome back
// through Resolve. The session lives on the update loop and is not safe for
// concurrent use.
type SearchSession struct {
	state      SessionState
	query      string
	page       int
	results    []domain.MovieSummary
	totalCount int
	hasMore    bool
	lastErr    error
	message    string
	gen        int

	logger *slog.Logger
}

// NewSearchSession creates an idle search session
func NewSearchSession(logger *slog.Logger) *SearchSession {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchSession{logger: logger}
}

// SubmitQuery starts a fresh page-1 search. Prior accumulated results are
// discarded even when the text is unchanged. Blank or whitespace-only text
// resets the session to idle and reports that no request should be issued.
func (s *SearchSession) SubmitQuery(text string) (SearchRequest, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.resetIdle()
		return SearchRequest{}, false
	}

	s.gen++
	s.state = SessionLoading
	s.query = text
	s.page = 1
	s.results = nil
	s.totalCount = 0
	s.hasMore = false
	s.lastErr = nil
	s.message = ""

	s.logger.Debug("search submitted", "query", text, "gen", s.gen)
	return SearchRequest{Query: text, Page: 1, Gen: s.gen}, true
}

// LoadMore requests the next page. It is a no-op while a fetch is in flight
// or when the catalog has no further pages.
func (s *SearchSession) LoadMore() (SearchRequest, bool) {
	if s.state == SessionLoading || !s.hasMore {
		return SearchRequest{}, false
	}

	s.page++
	s.state = SessionLoading
	s.lastErr = nil

	s.logger.Debug("loading next page", "query", s.query, "page", s.page)
	return SearchRequest{Query: s.query, Page: s.page, Gen: s.gen}, true
}

// Resolve applies a completed fetch to the session and reports whether it
// was applied. Outcomes tagged with a stale generation are dropped without
// touching any state, and the caller should ignore them too.
func (s *SearchSession) Resolve(req SearchRequest, page domain.SearchPage, err error) bool {
	if req.Gen != s.gen {
		s.logger.Debug("discarding stale search response", "query", req.Query, "page", req.Page)
		return false
	}

	if err != nil {
		s.state = SessionFailed
		s.lastErr = err
		if req.Page > 1 {
			// Step back so the next LoadMore retries this page
			s.page = req.Page - 1
		}
		return true
	}

	if page.IsEmpty() {
		s.state = SessionLoaded
		s.hasMore = false
		if req.Page == 1 {
			s.results = nil
			s.totalCount = 0
			s.message = page.Message
		}
		// An empty later page means the catalog ran out early; keep what
		// has accumulated
		return true
	}

	if req.Page == 1 {
		s.results = page.Results
	} else {
		s.results = append(s.results, page.Results...)
	}
	s.totalCount = page.TotalCount
	s.hasMore = page.TotalCount > req.Page*domain.SearchPageSize
	s.state = SessionLoaded
	s.lastErr = nil
	s.message = ""
	return true
}

// resetIdle returns the session to its pre-query state. The generation still
// advances so in-flight responses for the abandoned query are discarded.
func (s *SearchSession) resetIdle() {
	s.gen++
	s.state = SessionIdle
	s.query = ""
	s.page = 0
	s.results = nil
	s.totalCount = 0
	s.hasMore = false
	s.lastErr = nil
	s.message = ""
}

// State returns the current lifecycle state
func (s *SearchSession) State() SessionState { return s.state }

// Query returns the active query text
func (s *SearchSession) Query() string { return s.query }

// Page returns the highest page applied or in flight
func (s *SearchSession) Page() int { return s.page }

// Results returns the accumulated result list in catalog order
func (s *SearchSession) Results() []domain.MovieSummary { return s.results }

// TotalCount returns the catalog's reported total match count
func (s *SearchSession) TotalCount() int { return s.totalCount }

// HasMore reports whether further pages are available
func (s *SearchSession) HasMore() bool { return s.hasMore }

// IsLoading reports whether a fetch is in flight
func (s *SearchSession) IsLoading() bool { return s.state == SessionLoading }

// LastErr returns the error from the most recent failed fetch
func (s *SearchSession) LastErr() error { return s.lastErr }

// Message returns the catalog's message for an empty result set
func (s *SearchSession) Message() string { return s.message }
