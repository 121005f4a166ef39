package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/siyam-display/catalog-api/internal/usecase"
)

type ProductHandler struct {
	Catalog *usecase.CatalogService
}

func NewProductHandler(catalog *usecase.CatalogService) *ProductHandler {
	return &ProductHandler{Catalog: catalog}
}

// HandleList serves GET /products?category=&search=. An unknown category
// is an empty set, not a 400.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListProductsInput{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	output, err := h.Catalog.ListProducts(r.Context(), input)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"products": output.Products,
		"count":    output.Count,
	})
}

// HandleGet serves GET /products/{category}/{siyam_ref}. Not-found is a
// page state the storefront renders, delivered here as a 404.
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	siyamRef := chi.URLParam(r, "siyam_ref")

	part, err := h.Catalog.GetProduct(r.Context(), category, siyamRef)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if part == nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Product not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"product": part,
	})
}
