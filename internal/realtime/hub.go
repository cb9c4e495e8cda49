// Package realtime pushes reservation changes to connected back-office
// clients over WebSocket, replacing polling after every mutation.
package realtime

import (
	"net/http"
	"sync"

	"golang.org/x/net/websocket"

	"github.com/saphirspa/saphir-platform/internal/observability/metrics"
	"github.com/saphirspa/saphir-platform/internal/reservations"
	"github.com/saphirspa/saphir-platform/pkg/logging"
)

// Event is one change-feed frame.
type Event struct {
	Type        string                    `json:"type"` // "insert", "update", "pong"
	Reservation *reservations.Reservation `json:"reservation,omitempty"`
}

type inbound struct {
	Type string `json:"type"` // "ping"
}

// Hub fans reservation change events out to every connected client.
type Hub struct {
	logger  *logging.Logger
	metrics *metrics.RealtimeMetrics

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub. metrics may be nil.
func NewHub(logger *logging.Logger, m *metrics.RealtimeMetrics) *Hub {
	if logger == nil {
		logger = logging.Default()
	}
	return &Hub{
		logger:  logger,
		metrics: m,
		conns:   make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the WebSocket endpoint. Auth happens upstream (the
// admin router group), so the hub only manages connections.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

func (h *Hub) serve(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	h.metrics.ConnectionOpened()
	h.logger.Info("realtime: client connected", "clients", h.ClientCount())

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		h.metrics.ConnectionClosed()
		h.logger.Info("realtime: client disconnected", "clients", h.ClientCount())
	}()

	for {
		var msg inbound
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			return
		}
		if msg.Type == "ping" {
			_ = websocket.JSON.Send(conn, Event{Type: "pong"})
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends an event to every connected client. Send failures
// only drop the one connection's frame; the read loop cleans up.
func (h *Hub) Broadcast(evt Event) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := websocket.JSON.Send(conn, evt); err != nil {
			h.logger.Debug("realtime: send failed", "error", err)
		}
	}
	h.metrics.ObserveBroadcast(evt.Type)
}

// ReservationCreated broadcasts an insert event.
func (h *Hub) ReservationCreated(res *reservations.Reservation) {
	h.Broadcast(Event{Type: "insert", Reservation: res})
}

// ReservationUpdated broadcasts an update event.
func (h *Hub) ReservationUpdated(res *reservations.Reservation) {
	h.Broadcast(Event{Type: "update", Reservation: res})
}
