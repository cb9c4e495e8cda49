package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saphirspa/saphir-platform/internal/catalog"
	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// Handler exposes the booking wizard over HTTP.
type Handler struct {
	service        *Service
	whatsappNumber string
	logger         *logging.Logger
}

// NewHandler creates a booking handler. whatsappNumber is the spa's
// reception number the final WhatsApp link points at.
func NewHandler(service *Service, whatsappNumber string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, whatsappNumber: whatsappNumber, logger: logger}
}

type startRequest struct {
	ServiceID string `json:"service_id"`
}

// eventRequest is the wire form of a wizard event: a type tag plus the
// fields of that event.
type eventRequest struct {
	Type     string            `json:"type"`
	Group    catalog.GroupKind `json:"group,omitempty"`
	OptionID string            `json:"option_id,omitempty"`
	Date     string            `json:"date,omitempty"` // yyyy-mm-dd
	Slot     string            `json:"time,omitempty"`
	Field    ContactField      `json:"field,omitempty"`
	Value    string            `json:"value,omitempty"`
}

func (req eventRequest) event() (Event, error) {
	switch req.Type {
	case "select_option":
		return SelectOption{Group: req.Group, OptionID: req.OptionID}, nil
	case "select_date":
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrUnknownEvent, req.Date)
		}
		return SelectDate{Date: day}, nil
	case "select_time":
		return SelectTime{Slot: req.Slot}, nil
	case "set_contact":
		return SetContact{Field: req.Field, Value: req.Value}, nil
	case "advance":
		return Advance{}, nil
	case "retreat":
		return Retreat{}, nil
	case "reset":
		return Reset{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, req.Type)
	}
}

// Start handles POST /api/bookings/drafts
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	state, err := h.service.Start(r.Context(), req.ServiceID)
	if errors.Is(err, catalog.ErrServiceNotFound) {
		http.Error(w, `{"error": "service not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to start draft", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(state)
}

// Get handles GET /api/bookings/drafts/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(state)
}

// ApplyEvent handles POST /api/bookings/drafts/{id}/events
func (h *Handler) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	ev, err := req.event()
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error": %q}`, err.Error()), http.StatusBadRequest)
		return
	}

	state, err := h.service.Apply(r.Context(), chi.URLParam(r, "id"), ev)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(state)
}

// submitResponse extends the submit result with the pre-filled
// WhatsApp link the client opens.
type submitResponse struct {
	*SubmitResult
	WhatsAppURL string `json:"whatsapp_url"`
}

// Submit handles POST /api/bookings/drafts/{id}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Submit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(submitResponse{
		SubmitResult: result,
		WhatsAppURL:  WhatsAppLink(h.whatsappNumber, result.Message),
	})
}

// Discard handles DELETE /api/bookings/drafts/{id}
func (h *Handler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Discard(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Error("failed to discard draft", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDraftNotFound):
		http.Error(w, `{"error": "draft not found"}`, http.StatusNotFound)
	case errors.Is(err, ErrInvalidSelection),
		errors.Is(err, ErrInvalidTimeSlot),
		errors.Is(err, ErrMissingRequiredField),
		errors.Is(err, ErrUnknownEvent):
		http.Error(w, fmt.Sprintf(`{"error": %q}`, err.Error()), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrSubmissionFailed):
		http.Error(w, `{"error": "submission failed, please retry"}`, http.StatusBadGateway)
	default:
		h.logger.Error("booking request failed", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
	}
}
