package network

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Spectators are read-only; any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one connected spectator
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to spectators without ever blocking the simulation
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan engine.Frame
	register   chan *Client
	unregister chan *Client

	mu     sync.RWMutex
	latest *engine.Frame

	log  logrus.FieldLogger
	done chan struct{}
}

// NewHub creates a hub; call Run to start delivering
func NewHub(log logrus.FieldLogger) *Hub {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan engine.Frame, constant.SpectatorBroadcastQueueSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.WithField("component", "spectator"),
		done:       make(chan struct{}),
	}
}

// Run is the hub event loop; it disconnects every client when ctx ends
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.unregisterClient(client)
			}
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case f := <-h.broadcast:
			h.broadcastFrame(f)
		}
	}
}

// Done is closed when Run returns
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Render caches the frame and queues it for spectators; a full queue drops the frame
func (h *Hub) Render(f engine.Frame) error {
	h.mu.Lock()
	h.latest = &f
	h.mu.Unlock()

	select {
	case h.broadcast <- f:
	default:
	}
	return nil
}

// Latest returns the most recent frame
func (h *Hub) Latest() (engine.Frame, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return engine.Frame{}, false
	}
	return *h.latest, true
}

// ServeWS upgrades a spectator connection
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, constant.SpectatorSendQueueSize),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	core.Go(client.writePump)
	core.Go(client.readPump)
}

func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true
	h.log.WithFields(logrus.Fields{
		"remote":  client.conn.RemoteAddr().String(),
		"clients": len(h.clients),
	}).Info("spectator joined")

	// Late joiners see the current board right away
	if f, ok := h.Latest(); ok {
		if data, err := encodeFrame(f); err == nil {
			client.send <- data
		}
	}
}

func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	h.log.WithField("clients", len(h.clients)).Info("spectator left")
}

func (h *Hub) broadcastFrame(f engine.Frame) {
	data, err := encodeFrame(f)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal frame")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow spectator, drop it
			h.unregisterClient(client)
		}
	}
}

// ClientCount is only safe to read from the Run goroutine or after Run returns
func (h *Hub) ClientCount() int {
	return len(h.clients)
}

func encodeFrame(f engine.Frame) ([]byte, error) {
	return json.Marshal(Message{Event: EventFrame, Frame: &f})
}

// readPump discards peer messages and tracks pongs until the connection fails
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(constant.SpectatorMaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(constant.SpectatorPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(constant.SpectatorPongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Debug("spectator read error")
			}
			return
		}
	}
}

// writePump sends one text message per frame plus periodic pings
func (c *Client) writePump() {
	ticker := time.NewTicker(constant.SpectatorPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(constant.SpectatorWriteWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(constant.SpectatorWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
