package notificationControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kk-clothing/storefront-api/services/mailbox"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub pushes mailbox events to connected notification panels, replacing the
// fixed-interval polling the storefront used to do. Each connection is tagged
// with the audience it wants.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]mailbox.Audience
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]mailbox.Audience)}
}

// Broadcast sends the event to every client of the matching audience.
// Delivery is best effort; a failed write drops the client.
func (h *Hub) Broadcast(ev mailbox.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client, audience := range h.clients {
		if audience != ev.Audience {
			continue
		}
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn, audience mailbox.Audience) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = audience
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// serve upgrades the request and parks on the read loop until the client
// goes away.
func (h *Hub) serve(c *gin.Context, audience mailbox.Audience) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	h.add(conn, audience)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(conn)
			break
		}
	}
}

// GET /ws/notifications
func UserNotificationSocket(h *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serve(c, mailbox.AudienceUser)
	}
}

// GET /admin/ws
func AdminNotificationSocket(h *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serve(c, mailbox.AudienceAdmin)
	}
}
