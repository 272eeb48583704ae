package weebcentral

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const chapterRow = `
		<div class="flex items-center">
		  <a href="/chapters/%s">
		    <span class="grow">
		      <span>%s</span>
		    </span>
		  </a>
		  %s
		</div>`

func setupTestServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/search/simple", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `
		<div id="quick-search-result">
		  <div>
		    <a href="/series/series-1/test-manga">
		      <div class="flex-1">Test Manga</div>
		      <img src="https://example.com/cover.jpg" />
		    </a>
		  </div>
		</div>
		`)
	})

	// Newest first, as the site lists them.
	mux.HandleFunc("/series/series-1/full-chapter-list", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("HX-Request") != "true" {
			http.Error(w, "missing htmx header", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, chapterRow, "chapter-11", "Test Manga 10 extra", "")
		fmt.Fprintf(w, chapterRow, "chapter-10", "Chapter 10", "")
		fmt.Fprintf(w, chapterRow, "chapter-3", "Episode 2.a", "")
		fmt.Fprintf(w, chapterRow, "chapter-2", "Notice", "")
		fmt.Fprintf(w, chapterRow, "chapter-1", "Vol. 1 Ch. 1 Chapter One", `<time datetime="2025-01-01T00:00:00Z"></time>`)
	})

	mux.HandleFunc("/series/missing/full-chapter-list", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return httptest.NewServer(mux)
}

func TestWeebCentralProvider(t *testing.T) {
	server := setupTestServer()
	defer server.Close()

	p := NewWithBaseURL(server.URL)

	t.Run("Search", func(t *testing.T) {
		results, err := p.Search("test")
		if err != nil {
			t.Fatalf("Search() failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Expected 1 search result, got %d", len(results))
		}
		if results[0].Title != "Test Manga" {
			t.Errorf("Expected title 'Test Manga', got '%s'", results[0].Title)
		}
		if results[0].Identifier != "series-1" {
			t.Errorf("Expected identifier 'series-1', got '%s'", results[0].Identifier)
		}
		if !strings.HasPrefix(results[0].CoverURL, "https://example.com/cover.jpg") {
			t.Errorf("Expected cover url to start with 'https://example.com/cover.jpg', got '%s'", results[0].CoverURL)
		}
	})

	t.Run("GetChapters", func(t *testing.T) {
		results, err := p.GetChapters("series-1", "Test Manga")
		if err != nil {
			t.Fatalf("GetChapters() failed: %v", err)
		}
		if len(results) != 5 {
			t.Fatalf("Expected 5 chapter results, got %d", len(results))
		}

		want := []struct {
			id     string
			number float64
		}{
			{"chapter-1", 1},
			{"chapter-3", 2.1},
			{"chapter-10", 10},
			{"chapter-11", 10.99},
			{"chapter-2", -1},
		}
		for i, w := range want {
			if results[i].Identifier != w.id || results[i].Number != w.number {
				t.Errorf("Chapter %d: expected %s (%v), got %s (%v)", i, w.id, w.number, results[i].Identifier, results[i].Number)
			}
		}

		if results[0].Title != "Vol. 1 Ch. 1 Chapter One" {
			t.Errorf("Expected title 'Vol. 1 Ch. 1 Chapter One', got '%s'", results[0].Title)
		}
		expectedTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		if !results[0].PublishedAt.Equal(expectedTime) {
			t.Errorf("Expected PublishedAt %v, got %v", expectedTime, results[0].PublishedAt)
		}
	})

	t.Run("GetChapters Not Found", func(t *testing.T) {
		if _, err := p.GetChapters("missing", "Missing"); err == nil {
			t.Error("Expected an error for a missing series")
		}
	})
}

func TestIDAfter(t *testing.T) {
	testCases := []struct{ link, marker, want string }{
		{"https://weebcentral.com/series/01J76XY/one-piece", "/series/", "01J76XY"},
		{"/chapters/01J76ZZ", "/chapters/", "01J76ZZ"},
		{"/about", "/series/", ""},
	}
	for _, tc := range testCases {
		if got := idAfter(tc.link, tc.marker); got != tc.want {
			t.Errorf("idAfter(%q, %q) = %q, want %q", tc.link, tc.marker, got, tc.want)
		}
	}
}
