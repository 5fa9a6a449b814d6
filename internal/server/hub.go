package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dev-du-bled/the-free-transitionner/internal/game"
)

// Hub fans engine snapshots out to every connected websocket client.
// Clients are read-mostly: all commands go through the HTTP API, the
// socket only carries state pushes.
type Hub struct {
	clients    map[*wsClient]bool
	broadcast  chan []byte
	register   chan *wsClient
	unregister chan *wsClient

	// done is closed when Run exits so pump goroutines stop trying to
	// unregister against a loop that is no longer draining.
	done chan struct{}
	n    atomic.Int32
}

type wsClient struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		broadcast:  make(chan []byte, 8),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		done:       make(chan struct{}),
	}
}

// ClientCount reports how many clients are currently registered.
func (h *Hub) ClientCount() int { return int(h.n.Load()) }

// BroadcastState serializes a snapshot and queues it for all clients.
// Called from the engine's subscriber goroutine.
func (h *Hub) BroadcastState(s game.State) {
	b, err := json.Marshal(map[string]any{
		"type":    "state",
		"payload": s,
	})
	if err != nil {
		log.Printf("ws: marshal state: %v", err)
		return
	}
	select {
	case h.broadcast <- b:
	case <-h.done:
	}
}

// Run owns the client set. It blocks until ctx is cancelled, then closes
// every client's send channel so the write pumps drain and exit.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
				h.n.Add(-1)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.n.Add(1)
			log.Printf("ws: client %s connected", c.id)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.n.Add(-1)
				log.Printf("ws: client %s disconnected", c.id)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow consumer, drop it rather than stall the hub.
					close(c.send)
					delete(h.clients, c)
					h.n.Add(-1)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades the request and hands the connection to the hub.
func ServeWs(h *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws: upgrade: %v", err)
		return
	}
	c := &wsClient{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, 64),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		// Inbound frames are ignored; the read loop only detects closes.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws: client %s: %v", c.id, err)
			}
			return
		}
	}
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
