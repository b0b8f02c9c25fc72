package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/utils"
)

// OrderHub pushes new-order events to branch console clients, replacing the
// consoles' old manual refresh.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // branchID -> set of clients
	broadcast  chan OrderEvent
	register   chan Subscription
	unregister chan Subscription
	mu         sync.Mutex
}

type Subscription struct {
	Conn     *websocket.Conn
	BranchID uint
	UserID   uint
}

type OrderEvent struct {
	BranchID uint          `json:"branchId"`
	Type     string        `json:"type"` // created
	Order    *entity.Order `json:"order"`
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan Subscription),
		unregister: make(chan Subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.BranchID] == nil {
				h.clients[sub.BranchID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.BranchID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.BranchID][sub.Conn]; ok {
				delete(h.clients[sub.BranchID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.BranchID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.BranchID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyCreated is wired into the order service as its new-order callback.
func (h *OrderHub) NotifyCreated(o *entity.Order) {
	h.broadcast <- OrderEvent{BranchID: o.BranchID, Type: "created", Order: o}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/branches/:id/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	var branchID uint
	fmt.Sscan(c.Param("id"), &branchID)

	// branch accounts may only watch their own branch
	role := utils.CurrentRole(c)
	if role != "hq" && utils.CurrentBranchID(c) != branchID {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := Subscription{Conn: conn, BranchID: branchID, UserID: utils.CurrentUserID(c)}
	h.register <- sub

	go h.readLoop(sub)
}

// readLoop drains the connection so pings/closes are seen; clients never send
// payloads on this feed.
func (h *OrderHub) readLoop(sub Subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
