package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/metrics"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

const TypeTournamentUpdated = "tournament_updated"

type Message struct {
	Type    string `json:"type"`
	Room    string `json:"room"`
	Payload any    `json:"payload"`
}

// Hub fans tournament updates out to every websocket following that
// tournament. Each tournament id is a room.
type Hub struct {
	rooms      map[string]map[*client]struct{}
	mu         sync.RWMutex
	register   chan *client
	unregister chan *client
	done       chan struct{}
	upgrader   websocket.Upgrader
	metrics    *metrics.Metrics
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	room string
}

// NewHub returns a hub whose upgrader accepts the given origins. With no
// origins only same-origin requests are upgraded.
func NewHub(m *metrics.Metrics, allowedOrigins ...string) *Hub {
	h := &Hub{
		rooms:      make(map[string]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		metrics:    m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if len(allowedOrigins) > 0 {
		h.upgrader.CheckOrigin = originChecker(allowedOrigins)
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// Run owns room membership until ctx is done, then drops every client
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[c.room]; !ok {
				h.rooms[c.room] = make(map[*client]struct{})
			}
			h.rooms[c.room][c] = struct{}{}
			h.mu.Unlock()
			h.metrics.ConnectionOpened()

		case c := <-h.unregister:
			h.mu.Lock()
			h.remove(c)
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.rooms {
				for c := range clients {
					h.remove(c)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

// remove must be called with h.mu held
func (h *Hub) remove(c *client) {
	clients, ok := h.rooms[c.room]
	if !ok {
		return
	}
	if _, ok := clients[c]; !ok {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.rooms, c.room)
	}
	h.metrics.ConnectionClosed()
}

func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Broadcast sends payload to every client of room. Slow clients miss the
// message rather than block the others.
func (h *Hub) Broadcast(room, msgType string, payload any) {
	data, err := json.Marshal(Message{Type: msgType, Room: room, Payload: payload})
	if err != nil {
		slog.Error("failed to encode live message", "room", room, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- data:
		default:
			slog.Warn("live client is not keeping up, dropping message", "room", room)
		}
	}
}

// TournamentUpdated publishes the new state of a tournament to its room
func (h *Hub) TournamentUpdated(t *bracket.Tournament) {
	h.Broadcast(t.ID, TypeTournamentUpdated, t)
}

// ServeWS upgrades the request and follows room. When initial is not nil it
// is the first message the client receives.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, room string, initial *bracket.Tournament) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		slog.Warn("websocket upgrade failed", "room", room, "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer), room: room}
	if initial != nil {
		data, err := json.Marshal(Message{Type: TypeTournamentUpdated, Room: room, Payload: initial})
		if err == nil {
			c.send <- data
		}
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	case <-r.Context().Done():
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump only exists to notice the peer going away and to answer pings
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("live client closed unexpectedly", "room", c.room, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
