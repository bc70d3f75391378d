package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daymaker2day/daymaker2day/internal/catalog"
)

// CatalogHandler serves the service menu.
type CatalogHandler struct{}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListServices returns offerings filtered by category, class type, and a
// free-text search, all optional.
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Category:  r.URL.Query().Get("category"),
		ClassType: r.URL.Query().Get("type"),
		Search:    r.URL.Query().Get("q"),
	}
	out := catalog.Filter(catalog.Offerings, q)
	writeJSON(w, http.StatusOK, map[string]any{"services": out})
}

// GetService returns one offering by id.
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "serviceID")
	offering, ok := catalog.Lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, offering)
}

// ListCategories returns category names in menu order.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": catalog.Categories()})
}

// ListTimeSlots returns the bookable time-of-day tokens.
func (h *CatalogHandler) ListTimeSlots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"time_slots": catalog.TimeSlots})
}
