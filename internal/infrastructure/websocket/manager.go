package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"laptek/internal/domain/entity"
	"laptek/pkg/logger"
)

const (
	MessageTypeCatalogEvent = "catalog_event"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

// Message is the envelope pushed to every connected storefront.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// Client is one live catalog subscriber.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
	}
}

// Hub fans catalog events out to subscribers. The client set is owned by the
// goroutine started in Start; everything else talks to it over channels.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	mu    sync.RWMutex
	count int
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

// Start runs the hub loop until ctx is cancelled. On exit every client's
// Send channel is closed so its WritePump can hang up.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		defer close(h.done)

		for {
			select {
			case client := <-h.register:
				h.clients[client.ID] = client
				h.setCount(len(h.clients))
				logger.Debug("Catalog subscriber registered: %s", client.ID)

			case client := <-h.unregister:
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.Send)
				}
				h.setCount(len(h.clients))
				logger.Debug("Catalog subscriber unregistered: %s", client.ID)

			case message := <-h.broadcast:
				for id, client := range h.clients {
					select {
					case client.Send <- message:
					default:
						// Slow consumer.
						delete(h.clients, id)
						close(client.Send)
					}
				}
				h.setCount(len(h.clients))

			case <-ctx.Done():
				for id, client := range h.clients {
					delete(h.clients, id)
					close(client.Send)
				}
				h.setCount(0)
				return
			}
		}
	}()
}

// Done is closed once the hub loop has exited.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		close(client.Send)
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish broadcasts one catalog change. It blocks until the hub accepts it
// or has stopped.
func (h *Hub) Publish(event entity.ProductEvent) error {
	message, err := json.Marshal(Message{
		Type:      MessageTypeCatalogEvent,
		Data:      event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- message:
	case <-h.done:
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

// ReadPump drains the connection so control frames are processed. Subscribers
// never send data; anything they do send is discarded.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Catalog subscriber %s read error: %v", c.ID, err)
			}
			return
		}
	}
}

// WritePump sends queued messages and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("Catalog subscriber %s write error: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
