package giftcard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// Handler exposes gift card purchase and lookup.
type Handler struct {
	repo   *Repository
	logger *logging.Logger
}

// NewHandler creates a gift card handler.
func NewHandler(repo *Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// Amounts handles GET /api/giftcards/amounts
func (h *Handler) Amounts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]int{"amounts": Amounts})
}

// Create handles POST /api/giftcards
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var params CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}
	if params.RecipientName == "" || params.SenderName == "" {
		http.Error(w, `{"error": "recipient_name and sender_name are required"}`, http.StatusUnprocessableEntity)
		return
	}

	card, err := h.repo.Create(r.Context(), params)
	if errors.Is(err, ErrInvalidAmount) {
		http.Error(w, `{"error": "invalid gift card amount"}`, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.logger.Error("failed to create gift card", "error", err)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(card)
}

// Get handles GET /api/giftcards/{code}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	card, err := h.repo.GetByCode(r.Context(), code)
	if errors.Is(err, ErrCardNotFound) {
		http.Error(w, `{"error": "gift card not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("failed to load gift card", "error", err, "code", code)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(card)
}

// Redeem handles POST /admin/giftcards/{code}/redeem
func (h *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	card, err := h.repo.Redeem(r.Context(), code)
	switch {
	case errors.Is(err, ErrCardNotFound):
		http.Error(w, `{"error": "gift card not found"}`, http.StatusNotFound)
		return
	case errors.Is(err, ErrAlreadyRedeemed):
		http.Error(w, `{"error": "gift card already redeemed"}`, http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("failed to redeem gift card", "error", err, "code", code)
		http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(card)
}
