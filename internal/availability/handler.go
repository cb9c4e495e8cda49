package availability

import (
	"encoding/json"
	"net/http"
	"time"
)

// Handler serves the booking window over HTTP.
type Handler struct {
	provider *Provider
}

// NewHandler creates an availability handler.
func NewHandler(provider *Provider) *Handler {
	if provider == nil {
		provider = New(nil, 0)
	}
	return &Handler{provider: provider}
}

// Response is the availability payload: dates as yyyy-mm-dd strings
// plus the daily slots.
type Response struct {
	Dates []string `json:"dates"`
	Slots []string `json:"slots"`
}

// Get handles GET /api/availability
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	dates := h.provider.Dates()
	out := Response{
		Dates: make([]string, 0, len(dates)),
		Slots: h.provider.Slots(),
	}
	for _, d := range dates {
		out.Dates = append(out.Dates, d.Format(time.DateOnly))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}
