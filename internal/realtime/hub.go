package realtime

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// IRegistry is the connection registry the usecases push through. Delivery is
// best-effort: events to users without open sockets are dropped, the match or
// gift itself stays discoverable via list queries.
type IRegistry interface {
	SendToUser(userID uint, event interface{}) bool
	SendToRoom(room string, event interface{})
	JoinRoom(userID uint, room string)
	LeaveRoom(userID uint, room string)
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// StreamRoom names the fan-out room of a live stream.
func StreamRoom(streamID uint) string {
	return "stream:" + strconv.FormatUint(uint64(streamID), 10)
}

type Client struct {
	hub    *Hub
	userID uint
	conn   *websocket.Conn
	send   chan []byte
}

// Hub maps user ids to their open sockets and rooms to their members.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

// Register attaches an upgraded connection to the user and starts its pumps.
func (h *Hub) Register(userID uint, conn *websocket.Conn) *Client {
	client := &Client{
		hub:    h,
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 16),
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	h.clients[userID][client] = struct{}{}
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if conns, ok := h.clients[client.userID]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.send)
			if len(conns) == 0 {
				delete(h.clients, client.userID)
			}
		}
	}
	for room, members := range h.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) SendToUser(userID uint, event interface{}) bool {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal realtime event")
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.clients[userID]
	if !ok || len(conns) == 0 {
		return false
	}

	for client := range conns {
		select {
		case client.send <- payload:
		default:
			// Slow consumer; drop the event rather than block the sender.
		}
	}

	return true
}

func (h *Hub) SendToRoom(room string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal realtime event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[room] {
		select {
		case client.send <- payload:
		default:
		}
	}
}

func (h *Hub) JoinRoom(userID uint, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	for client := range h.clients[userID] {
		h.rooms[room][client] = struct{}{}
	}
}

func (h *Hub) LeaveRoom(userID uint, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		return
	}
	for client := range h.clients[userID] {
		delete(members, client)
	}
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// readPump drains the connection. Clients don't speak to the server over the
// socket; reads only service pongs and detect the close.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
