package api

import (
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/vrsandeep/mango-chapters/internal/providers"
)

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, providers.GetAll())
}

func (s *Server) handleProviderSearch(w http.ResponseWriter, r *http.Request) {
	provider, ok := providers.Get(chi.URLParam(r, "providerID"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Provider not found")
		return
	}

	results, err := provider.Search(r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("Provider search failed: %v", err)
		RespondWithError(w, http.StatusBadGateway, "Failed to perform search")
		return
	}
	RespondWithJSON(w, http.StatusOK, results)
}

// handleProviderGetChapters lists a series' chapters from a provider. The
// optional 'title' query parameter is the series title removed from chapter
// titles before their numbers are recognised.
func (s *Server) handleProviderGetChapters(w http.ResponseWriter, r *http.Request) {
	// The series identifier might contain escaped characters like '/'.
	seriesIdentifier, err := url.PathUnescape(chi.URLParam(r, "seriesIdentifier"))
	if err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid series identifier")
		return
	}

	provider, ok := providers.Get(chi.URLParam(r, "providerID"))
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Provider not found")
		return
	}

	results, err := provider.GetChapters(seriesIdentifier, r.URL.Query().Get("title"))
	if err != nil {
		log.Printf("Provider chapter list failed: %v", err)
		RespondWithError(w, http.StatusBadGateway, "Failed to get chapters")
		return
	}
	RespondWithJSON(w, http.StatusOK, results)
}
