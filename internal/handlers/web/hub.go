package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	clientBuffer = 16
	writeWait    = 10 * time.Second
)

// eventSnapshot is sent to a client as soon as it connects
const eventSnapshot roulette.EventType = "snapshot"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type client struct {
	conn *websocket.Conn
	send chan roulette.Event
}

// hub fans roulette events out to every connected browser
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	logger  *log.Logger
}

func newHub(logger *log.Logger) *hub {
	return &hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// broadcast queues ev for every client. Clients that fall behind are dropped.
func (h *hub) broadcast(ev roulette.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- ev:
		default:
			h.logger.Warn("Dropping slow websocket client")
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// serve upgrades the request and streams events until the browser goes away
func (h *hub) serve(w http.ResponseWriter, r *http.Request, snapshot *roulette.Status) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("Websocket upgrade failed", "err", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan roulette.Event, clientBuffer),
	}
	c.send <- roulette.Event{Type: eventSnapshot, Status: snapshot}
	h.add(c)

	go c.writePump()
	c.readPump(h)
}

// readPump discards incoming frames; it only notices the close
func (c *client) readPump(h *hub) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	// The server read timeout still applies to the hijacked connection
	_ = c.conn.SetReadDeadline(time.Time{})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for ev := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(ev); err != nil {
			return
		}
	}
}
