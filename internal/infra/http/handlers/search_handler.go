package handlers

import (
	"net/http"

	"github.com/siyam-display/catalog-api/internal/infra/http/middleware"
	"github.com/siyam-display/catalog-api/internal/usecase"
)

type SearchHandler struct {
	Catalog *usecase.CatalogService
}

func NewSearchHandler(catalog *usecase.CatalogService) *SearchHandler {
	return &SearchHandler{Catalog: catalog}
}

// HandleSearch serves GET /search?query=. An empty query is a valid
// empty result, not an error.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	output, err := h.Catalog.Search(r.Context(), query)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if output.UsedFallback {
		middleware.RecordSearchFallback()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"results": output.Results,
		"count":   output.Count,
	})
}
