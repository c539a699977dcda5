package handler

import (
	"log/slog"
	"net/http"

	"filebox/internal/httputil"
	"filebox/internal/service"
)

// SearchHandler handles the cross-entity search endpoint
type SearchHandler struct {
	search *service.SearchService
	logger *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{search: search, logger: logger}
}

// Search matches folder and file names against a substring query
// GET /api/v1/search?q=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	httputil.RespondData(w, http.StatusOK, results)
}
