package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dmaize/reel/internal/domain"
	"github.com/dmaize/reel/internal/log"
)

// pageOf builds a result page of n movies numbered from start
func pageOf(start, n, total int) domain.SearchPage {
	results := make([]domain.MovieSummary, n)
	for i := range results {
		results[i] = domain.MovieSummary{
			ID:    fmt.Sprintf("tt%07d", start+i),
			Title: fmt.Sprintf("Movie %d", start+i),
			Year:  "2004",
		}
	}
	return domain.SearchPage{Results: results, TotalCount: total}
}

func TestSessionPagination(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, ok := s.SubmitQuery("batman")
	if !ok {
		t.Fatal("SubmitQuery() ok = false, want true")
	}
	if req.Query != "batman" || req.Page != 1 {
		t.Fatalf("SubmitQuery() req = %+v, want page 1 for batman", req)
	}
	if !s.IsLoading() {
		t.Error("IsLoading() = false after submit")
	}

	if !s.Resolve(req, pageOf(1, 10, 23), nil) {
		t.Fatal("Resolve() = false for the current generation")
	}
	if got := len(s.Results()); got != 10 {
		t.Fatalf("len(Results()) = %d, want 10", got)
	}
	if !s.HasMore() {
		t.Error("HasMore() = false, want true with 23 total and 10 loaded")
	}

	req2, ok := s.LoadMore()
	if !ok || req2.Page != 2 {
		t.Fatalf("LoadMore() = %+v, %v, want page 2", req2, ok)
	}
	s.Resolve(req2, pageOf(11, 10, 23), nil)

	want := append(pageOf(1, 10, 23).Results, pageOf(11, 10, 23).Results...)
	if diff := cmp.Diff(want, s.Results()); diff != "" {
		t.Errorf("Results() after page 2 mismatch (-want +got):\n%s", diff)
	}
	if !s.HasMore() {
		t.Error("HasMore() = false, want true with 23 total and 20 loaded")
	}

	req3, ok := s.LoadMore()
	if !ok || req3.Page != 3 {
		t.Fatalf("LoadMore() = %+v, %v, want page 3", req3, ok)
	}
	s.Resolve(req3, pageOf(21, 3, 23), nil)

	if got := len(s.Results()); got != 23 {
		t.Fatalf("len(Results()) = %d, want 23", got)
	}
	if s.HasMore() {
		t.Error("HasMore() = true after the final page")
	}
	if _, ok := s.LoadMore(); ok {
		t.Error("LoadMore() ok = true with no pages left")
	}
}

func TestSessionLoadMoreWhileLoading(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, _ := s.SubmitQuery("batman")
	s.Resolve(req, pageOf(1, 10, 23), nil)

	if _, ok := s.LoadMore(); !ok {
		t.Fatal("LoadMore() ok = false, want true")
	}
	if _, ok := s.LoadMore(); ok {
		t.Error("LoadMore() issued a second request while one is in flight")
	}
}

func TestSessionStaleResponseDiscarded(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	reqA, _ := s.SubmitQuery("alien")
	reqB, _ := s.SubmitQuery("blade")

	// The abandoned query's response lands late
	if s.Resolve(reqA, pageOf(1, 10, 50), nil) {
		t.Fatal("Resolve() applied a stale response")
	}
	if len(s.Results()) != 0 {
		t.Errorf("len(Results()) = %d after stale resolve, want 0", len(s.Results()))
	}
	if !s.IsLoading() {
		t.Error("IsLoading() = false, the live fetch is still out")
	}

	if !s.Resolve(reqB, pageOf(101, 5, 5), nil) {
		t.Fatal("Resolve() = false for the live generation")
	}
	if s.Query() != "blade" {
		t.Errorf("Query() = %q, want blade", s.Query())
	}
	if got := len(s.Results()); got != 5 {
		t.Errorf("len(Results()) = %d, want 5", got)
	}
}

func TestSessionBlankQueryResets(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, _ := s.SubmitQuery("batman")
	s.Resolve(req, pageOf(1, 10, 23), nil)

	if _, ok := s.SubmitQuery("   "); ok {
		t.Fatal("SubmitQuery(blank) ok = true, want false")
	}
	if s.State() != SessionIdle {
		t.Errorf("State() = %v, want SessionIdle", s.State())
	}
	if len(s.Results()) != 0 || s.Query() != "" || s.HasMore() {
		t.Error("blank submit left stale session state behind")
	}

	// Anything still in flight for the old query must now be stale
	if s.Resolve(req, pageOf(1, 10, 23), nil) {
		t.Error("Resolve() applied a response from before the reset")
	}
}

func TestSessionEmptyLaterPageEndsPagination(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, _ := s.SubmitQuery("batman")
	s.Resolve(req, pageOf(1, 10, 23), nil)

	req2, _ := s.LoadMore()
	// The catalog ran out earlier than totalResults promised
	s.Resolve(req2, domain.SearchPage{}, nil)

	if s.State() != SessionLoaded {
		t.Errorf("State() = %v, want SessionLoaded", s.State())
	}
	if got := len(s.Results()); got != 10 {
		t.Errorf("len(Results()) = %d, want the accumulated 10", got)
	}
	if s.HasMore() {
		t.Error("HasMore() = true after an empty page")
	}
	if s.LastErr() != nil {
		t.Errorf("LastErr() = %v, want nil", s.LastErr())
	}
}

func TestSessionEmptyFirstPageCarriesMessage(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, _ := s.SubmitQuery("qwzx")
	s.Resolve(req, domain.SearchPage{Message: "Movie not found!"}, nil)

	if s.State() != SessionLoaded {
		t.Errorf("State() = %v, want SessionLoaded", s.State())
	}
	if len(s.Results()) != 0 || s.TotalCount() != 0 || s.HasMore() {
		t.Error("empty first page left result state behind")
	}
	if s.Message() != "Movie not found!" {
		t.Errorf("Message() = %q, want the upstream message", s.Message())
	}
}

func TestSessionFirstPageFailure(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, _ := s.SubmitQuery("batman")
	s.Resolve(req, domain.SearchPage{}, domain.ErrCatalogUnreachable)

	if s.State() != SessionFailed {
		t.Fatalf("State() = %v, want SessionFailed", s.State())
	}
	if !errors.Is(s.LastErr(), domain.ErrCatalogUnreachable) {
		t.Errorf("LastErr() = %v, want ErrCatalogUnreachable", s.LastErr())
	}

	// Resubmitting the same query starts clean
	req2, ok := s.SubmitQuery("batman")
	if !ok || req2.Page != 1 {
		t.Fatalf("SubmitQuery() after failure = %+v, %v", req2, ok)
	}
	if s.LastErr() != nil {
		t.Error("LastErr() survived a resubmit")
	}
	s.Resolve(req2, pageOf(1, 10, 23), nil)
	if s.State() != SessionLoaded {
		t.Errorf("State() = %v, want SessionLoaded", s.State())
	}
}

func TestSessionLoadMoreFailureKeepsResultsAndRetries(t *testing.T) {
	s := NewSearchSession(log.NullLogger())

	req, _ := s.SubmitQuery("batman")
	s.Resolve(req, pageOf(1, 10, 23), nil)

	req2, _ := s.LoadMore()
	s.Resolve(req2, domain.SearchPage{}, domain.ErrCatalogUnreachable)

	if s.State() != SessionFailed {
		t.Fatalf("State() = %v, want SessionFailed", s.State())
	}
	if got := len(s.Results()); got != 10 {
		t.Errorf("len(Results()) = %d, a failed page 2 must keep page 1", got)
	}
	if !s.HasMore() {
		t.Error("HasMore() = false, the failed page is still out there")
	}

	// The page counter stepped back, so the retry refetches page 2
	retry, ok := s.LoadMore()
	if !ok || retry.Page != 2 {
		t.Fatalf("LoadMore() retry = %+v, %v, want page 2", retry, ok)
	}
	s.Resolve(retry, pageOf(11, 10, 23), nil)

	if got := len(s.Results()); got != 20 {
		t.Errorf("len(Results()) = %d, want 20 after the retry", got)
	}
	if s.State() != SessionLoaded || s.LastErr() != nil {
		t.Error("retry did not clear the failure")
	}
}
