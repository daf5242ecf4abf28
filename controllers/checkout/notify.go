package checkoutController

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// CheckoutNotification is pushed to admin subscribers whenever a customer
// hands an order off to WhatsApp. Nothing is persisted server-side; this is
// a live feed only.
type CheckoutNotification struct {
	CartID    string    `json:"cart_id"`
	Customer  string    `json:"customer"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ItemCount int       `json:"item_count"`
	Total     int64     `json:"total"`
	At        time.Time `json:"at"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans checkout notifications out to connected admin websockets.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// GET /admin/ws/checkouts
func (h *Hub) Subscribe() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// Broadcast sends the notification to every subscriber, dropping clients
// whose connection has gone away.
func (h *Hub) Broadcast(n CheckoutNotification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(n); err != nil {
			log.Warn().Err(err).Msg("dropping stale checkout subscriber")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
