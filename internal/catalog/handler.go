package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the service menu. The catalog is static, so handlers
// only shape it for the wire.
type Handler struct{}

// NewHandler creates a catalog handler.
func NewHandler() *Handler { return &Handler{} }

// ListServices handles GET /api/services?category=
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services := List(r.URL.Query().Get("category"))
	if services == nil {
		services = []Service{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"services": services,
		"count":    len(services),
	})
}

// GetService handles GET /api/services/{id}
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := Get(chi.URLParam(r, "id"))
	if errors.Is(err, ErrServiceNotFound) {
		http.Error(w, `{"error": "service not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(svc)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"categories": Categories()})
}
