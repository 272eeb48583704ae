package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vrsandeep/mango-chapters/internal/store"
)

func (s *Server) handleListSeries(w http.ResponseWriter, r *http.Request) {
	series, err := s.store.ListSeries()
	if err != nil {
		log.Printf("Error listing series: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to list series")
		return
	}
	RespondWithJSON(w, http.StatusOK, series)
}

func (s *Server) handleGetSeriesChapters(w http.ResponseWriter, r *http.Request) {
	seriesID, err := strconv.ParseInt(chi.URLParam(r, "seriesID"), 10, 64)
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid series ID")
		return
	}

	series, err := s.store.GetSeriesByID(seriesID)
	if errors.Is(err, store.ErrSeriesNotFound) {
		RespondWithError(w, http.StatusNotFound, "Series not found")
		return
	}
	if err != nil {
		log.Printf("Error getting series %d: %v", seriesID, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to get series")
		return
	}

	series.Chapters, err = s.store.ListChaptersBySeries(seriesID)
	if err != nil {
		log.Printf("Error listing chapters of series %d: %v", seriesID, err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to list chapters")
		return
	}
	RespondWithJSON(w, http.StatusOK, series)
}

func (s *Server) handleListUnrecognizedChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := s.store.ListUnrecognizedChapters()
	if err != nil {
		log.Printf("Error listing unrecognized chapters: %v", err)
		RespondWithError(w, http.StatusInternalServerError, "Failed to list chapters")
		return
	}
	RespondWithJSON(w, http.StatusOK, chapters)
}
