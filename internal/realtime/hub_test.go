package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/saphirspa/saphir-platform/internal/reservations"
)

func dialTestHub(t *testing.T, h *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, err := websocket.Dial(url, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("client count never reached %d (have %d)", want, h.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHubTracksConnections(t *testing.T) {
	h := NewHub(nil, nil)
	assert.Equal(t, 0, h.ClientCount())

	conn := dialTestHub(t, h)
	waitForClients(t, h, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, h, 0)
}

func TestHubBroadcastReachesClient(t *testing.T) {
	h := NewHub(nil, nil)
	conn := dialTestHub(t, h)
	waitForClients(t, h, 1)

	h.ReservationCreated(&reservations.Reservation{ID: "res-1", ClientName: "Awa"})

	var evt Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, websocket.JSON.Receive(conn, &evt))
	assert.Equal(t, "insert", evt.Type)
	require.NotNil(t, evt.Reservation)
	assert.Equal(t, "res-1", evt.Reservation.ID)
}

func TestHubPingPong(t *testing.T) {
	h := NewHub(nil, nil)
	conn := dialTestHub(t, h)
	waitForClients(t, h, 1)

	require.NoError(t, websocket.JSON.Send(conn, map[string]string{"type": "ping"}))

	var evt Event
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, websocket.JSON.Receive(conn, &evt))
	assert.Equal(t, "pong", evt.Type)
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	h := NewHub(nil, nil)
	// Must not panic or block.
	h.ReservationUpdated(&reservations.Reservation{ID: "res-1"})
}
