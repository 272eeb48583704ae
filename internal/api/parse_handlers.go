package api

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/util"
)

const (
	maxParseBatch    = 1000
	maxParseBodySize = 1 << 20
)

// ParseResult is the recognition of one chapter title.
type ParseResult struct {
	Chapter string `json:"chapter"`
	chapter.Recognition
}

// ParseRequest is the payload of a batch parse.
type ParseRequest struct {
	Title    string   `json:"title"`
	Chapters []string `json:"chapters"`
	Sort     bool     `json:"sort"`
}

func (s *Server) handleParseChapter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	text := query.Get("chapter")
	if text == "" {
		RespondWithError(w, http.StatusBadRequest, "Missing 'chapter' query parameter")
		return
	}
	RespondWithJSON(w, http.StatusOK, ParseResult{
		Chapter:     text,
		Recognition: chapter.Recognize(query.Get("title"), text),
	})
}

func (s *Server) handleParseChapters(w http.ResponseWriter, r *http.Request) {
	var payload ParseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxParseBodySize)).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(payload.Chapters) > maxParseBatch {
		RespondWithError(w, http.StatusBadRequest, "Too many chapters in one request")
		return
	}

	results := make([]ParseResult, len(payload.Chapters))
	for i, text := range payload.Chapters {
		results[i] = ParseResult{Chapter: text, Recognition: chapter.Recognize(payload.Title, text)}
	}
	if payload.Sort {
		slices.SortStableFunc(results, func(a, b ParseResult) int {
			return util.CompareNumbered(a.Number, a.Chapter, b.Number, b.Chapter)
		})
	}

	RespondWithJSON(w, http.StatusOK, map[string]any{
		"title":   payload.Title,
		"results": results,
	})
}
