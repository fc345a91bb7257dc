package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

// OrderHub pushes committed status changes to clients watching an order.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // orderID -> connections
	broadcast  chan statusUpdate
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	orders     *services.OrderService
}

type subscription struct {
	Conn    *websocket.Conn
	OrderID uint
	UserID  uint
}

type statusUpdate struct {
	OrderID uint               `json:"orderId"`
	Status  entity.OrderStatus `json:"status"`
}

func NewOrderHub(orders *services.OrderService) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan statusUpdate),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		orders:     orders,
	}
}

// OrderStatusChanged implements services.StatusListener.
func (h *OrderHub) OrderStatusChanged(orderID uint, status entity.OrderStatus) {
	h.broadcast <- statusUpdate{OrderID: orderID, Status: status}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.OrderID] == nil {
				h.clients[sub.OrderID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.OrderID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.OrderID][sub.Conn]; ok {
				delete(h.clients[sub.OrderID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[upd.OrderID] {
				if err := conn.WriteJSON(upd); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[upd.OrderID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:id
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	orderID := uint(id64)
	userID := utils.CurrentUserID(c)

	// only the order's owner (or an operator) may watch it
	if utils.CurrentRole(c) != "admin" {
		if _, err := h.orders.DetailForUser(userID, orderID); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "no access"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, OrderID: orderID, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps the connection's read side alive so pings and closes are
// processed; clients never send order data.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
