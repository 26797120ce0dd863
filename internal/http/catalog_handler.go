package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abarrotes/pos/internal/catalog"
	"github.com/abarrotes/pos/internal/domain"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "category_id")
	products, err := h.catalog.Products(categoryID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	results := h.catalog.Search(term)
	if results == nil {
		results = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, results)
}
