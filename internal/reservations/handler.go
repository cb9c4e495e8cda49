package reservations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// ChangePublisher pushes reservation changes to connected back-office
// clients.
type ChangePublisher interface {
	ReservationUpdated(res *Reservation)
}

// Handler exposes the back-office reservation endpoints.
type Handler struct {
	repo      *Repository
	publisher ChangePublisher
	logger    *logging.Logger
	now       func() time.Time
}

// NewHandler creates a reservations handler. publisher may be nil.
func NewHandler(repo *Repository, publisher ChangePublisher, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

// ListResponse is the list endpoint payload.
type ListResponse struct {
	Reservations []*Reservation `json:"reservations"`
	Count        int            `json:"count"`
}

// List handles GET /admin/reservations?q=&limit=&offset=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := ListFilter{
		Search: r.URL.Query().Get("q"),
		Limit:  100,
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 200 {
			filter.Limit = limit
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	list, err := h.repo.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list reservations", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*Reservation{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ListResponse{Reservations: list, Count: len(list)})
}

// UpdateStatus handles PATCH /admin/reservations/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			http.Error(w, `{"error": "invalid status"}`, http.StatusUnprocessableEntity)
		case errors.Is(err, ErrReservationNotFound):
			http.Error(w, `{"error": "reservation not found"}`, http.StatusNotFound)
		default:
			h.logger.Error("failed to update reservation status", "error", err, "id", id)
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		}
		return
	}

	res, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to reload reservation", "error", err, "id", id)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	if h.publisher != nil {
		h.publisher.ReservationUpdated(res)
	}
	h.logger.Info("reservation status updated", "id", id, "status", req.Status)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

// Stats handles GET /admin/stats?window_days=
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	windowDays := 30
	if s := r.URL.Query().Get("window_days"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 && v <= 365 {
			windowDays = v
		}
	}

	stats, err := h.repo.GetStats(r.Context(), h.now(), windowDays)
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
