package clients

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// Handler exposes the back-office client directory.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a clients handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// ListResponse is the list endpoint payload.
type ListResponse struct {
	Clients []*Client `json:"clients"`
	Count   int       `json:"count"`
}

// List handles GET /admin/clients?q=&limit=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 200
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	list, err := h.repo.List(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		h.logger.Error("failed to list clients", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*Client{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ListResponse{Clients: list, Count: len(list)})
}

// Get handles GET /admin/clients/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	client, err := h.repo.GetByID(r.Context(), id)
	if errors.Is(err, ErrClientNotFound) {
		http.Error(w, `{"error": "client not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load client", "error", err, "id", id)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(client)
}
