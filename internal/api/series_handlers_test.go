package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/mango-chapters/internal/models"
)

func TestSeriesHandlers(t *testing.T) {
	server, _ := setupLibraryServer(t)
	router := server.Router()

	var series []models.Series

	t.Run("List Series", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/series", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &series))
		require.Len(t, series, 1)
		assert.Equal(t, "Bleach", series[0].Title)
		assert.Equal(t, 3, series[0].ChapterCount)
		assert.Equal(t, 1, series[0].UnrecognizedCount)
		assert.Nil(t, series[0].Chapters)
	})

	t.Run("Series Chapters In Reading Order", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/api/series/%d/chapters", series[0].ID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Series
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		var titles []string
		for _, c := range got.Chapters {
			titles = append(titles, c.Title)
		}
		assert.Equal(t, []string{"Bleach 567.a", "Bleach 567.extra", "Bleach Oneshot"}, titles)
	})

	t.Run("Unknown Series", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/series/9999/chapters", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Invalid Series ID", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/series/abc/chapters", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unrecognized Chapters", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/chapters/unrecognized", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var chapters []models.Chapter
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &chapters))
		require.Len(t, chapters, 1)
		assert.Equal(t, "Bleach Oneshot", chapters[0].Title)
		assert.Equal(t, -1.0, chapters[0].Number)
	})
}
