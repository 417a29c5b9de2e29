package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html>
<head><meta name="description" content="staging environment"></head>
<body>
<p>Welcome to Initech. Contact michael.bolton@initech.example for access.</p>
<script>var ignored = "donotscrapeme";</script>
<a href="%s/team">Team</a>
</body></html>`, srv.URL)
	})
	mux.HandleFunc("/team", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>peter gibbons</body></html>`)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeURL_ExtractsWords(t *testing.T) {
	srv := newTestSite(t)

	s := New(1)
	words := s.ScrapeURL(context.Background(), srv.URL, 0)

	for _, want := range []string{"welcome", "initech", "michael.bolton", "staging", "environment"} {
		if !words.Contains(want) {
			t.Errorf("scraped words missing %q", want)
		}
	}

	if words.Contains("donotscrapeme") {
		t.Error("script bodies must not be scraped")
	}
	if words.Contains("to") {
		t.Error("words below 3 chars must be dropped")
	}
}

func TestScrapeURL_FollowsLinksAtDepth(t *testing.T) {
	srv := newTestSite(t)
	s := New(1)

	shallow := s.ScrapeURL(context.Background(), srv.URL, 0)
	if shallow.Contains("gibbons") {
		t.Error("depth 0 must not follow links")
	}

	deep := s.ScrapeURL(context.Background(), srv.URL, 1)
	if !deep.Contains("gibbons") {
		t.Error("depth 1 should follow the same-host link")
	}
}

func TestScrapeAll_ToleratesFailures(t *testing.T) {
	srv := newTestSite(t)
	s := New(4)

	urls := []string{
		srv.URL,
		"http://127.0.0.1:1/unreachable",
		"not a url",
	}

	words := s.ScrapeAll(context.Background(), urls, 0)
	if !words.Contains("initech") {
		t.Error("reachable URL should still contribute words")
	}
}

func TestScrapeAll_Empty(t *testing.T) {
	s := New(4)
	if got := s.ScrapeAll(context.Background(), nil, 1); got.Len() != 0 {
		t.Errorf("ScrapeAll(nil) = %v, want empty", got.Sorted())
	}
}
