package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

type testEvent struct {
	Type string `json:"type"`
	Body string `json:"body"`
}

// dial connects a client socket for the given user id and returns the
// client-side connection.
func dial(t *testing.T, hub *Hub, server *httptest.Server, userID uint) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?user=" + strconv.FormatUint(uint64(userID), 10)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Give the server side a beat to register the socket.
	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userID]) > 0
	})

	return conn
}

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseUint(r.URL.Query().Get("user"), 10, 64)
		if err != nil {
			http.Error(w, "bad user", http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		hub.Register(uint(userID), conn)
	}))
	t.Cleanup(server.Close)

	return server
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func readEvent(t *testing.T, conn *websocket.Conn) testEvent {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event testEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	return event
}

func TestSendToUserReachesAllSockets(t *testing.T) {
	hub := NewHub()
	server := newTestServer(t, hub)

	first := dial(t, hub, server, 1)
	second := dial(t, hub, server, 1)
	other := dial(t, hub, server, 2)

	delivered := hub.SendToUser(1, testEvent{Type: "match", Body: "hello"})
	assert.True(t, delivered)

	assert.Equal(t, "match", readEvent(t, first).Type)
	assert.Equal(t, "match", readEvent(t, second).Type)

	// User 2 must not see user 1's event.
	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err)
}

func TestSendToOfflineUserIsDropped(t *testing.T) {
	hub := NewHub()

	delivered := hub.SendToUser(42, testEvent{Type: "match"})
	assert.False(t, delivered)
}

func TestRoomFanOut(t *testing.T) {
	hub := NewHub()
	server := newTestServer(t, hub)

	member := dial(t, hub, server, 1)
	outsider := dial(t, hub, server, 2)

	hub.JoinRoom(1, StreamRoom(5))
	hub.SendToRoom(StreamRoom(5), testEvent{Type: "stream_message", Body: "hi"})

	event := readEvent(t, member)
	assert.Equal(t, "stream_message", event.Type)
	assert.Equal(t, "hi", event.Body)

	outsider.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := outsider.ReadMessage()
	assert.Error(t, err)
}

func TestLeaveRoomStopsDelivery(t *testing.T) {
	hub := NewHub()
	server := newTestServer(t, hub)

	member := dial(t, hub, server, 1)

	hub.JoinRoom(1, StreamRoom(5))
	hub.LeaveRoom(1, StreamRoom(5))
	hub.SendToRoom(StreamRoom(5), testEvent{Type: "stream_message"})

	member.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := member.ReadMessage()
	assert.Error(t, err)
}

func TestDisconnectUnregisters(t *testing.T) {
	hub := NewHub()
	server := newTestServer(t, hub)

	conn := dial(t, hub, server, 1)
	conn.Close()

	waitFor(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[1]) == 0
	})

	assert.False(t, hub.SendToUser(1, testEvent{Type: "match"}))
}
