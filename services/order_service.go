package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/events"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/metrics"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
)

// StatusListener receives committed status changes, e.g. to push them over
// a websocket. Set after construction to avoid a package cycle.
type StatusListener interface {
	OrderStatusChanged(orderID uint, status entity.OrderStatus)
}

type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	Catalog *repository.CatalogRepository
	Events  events.Publisher
	Metrics *metrics.OrderMetrics

	listener StatusListener
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	catalog *repository.CatalogRepository,
	pub events.Publisher,
	m *metrics.OrderMetrics,
) *OrderService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &OrderService{DB: db, Repo: repo, Catalog: catalog, Events: pub, Metrics: m}
}

func (s *OrderService) SetListener(l StatusListener) { s.listener = l }

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Qty        int  `json:"qty" binding:"required,min=1"`
}

type CreateOrderReq struct {
	StoreID         uint          `json:"storeId" binding:"required"`
	Items           []OrderItemIn `json:"items" binding:"required,min=1"`
	DeliveryAddress string        `json:"deliveryAddress" binding:"required"`
	DeliveryLat     *float64      `json:"deliveryLat"`
	DeliveryLng     *float64      `json:"deliveryLng"`
	Notes           string        `json:"notes"`
}

func (req *CreateOrderReq) validate() error {
	if req.StoreID == 0 {
		return apperr.Validation("storeId", "required")
	}
	if len(req.Items) == 0 {
		return apperr.Validation("items", "at least one item is required")
	}
	for _, it := range req.Items {
		if it.MenuItemID == 0 {
			return apperr.Validation("items", "menuItemId is required")
		}
		if it.Qty < 1 {
			return apperr.Validation("items", "qty must be a positive integer")
		}
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return apperr.Validation("deliveryAddress", "required")
	}
	if req.DeliveryLat != nil && (*req.DeliveryLat < -90 || *req.DeliveryLat > 90) {
		return apperr.Validation("deliveryLat", "must be within [-90, 90]")
	}
	if req.DeliveryLng != nil && (*req.DeliveryLng < -180 || *req.DeliveryLng > 180) {
		return apperr.Validation("deliveryLng", "must be within [-180, 180]")
	}
	return nil
}

// Create turns a cart into a persisted order plus its line items.
//
// Prices are resolved once from the catalog, the total is summed in int64
// cents, and the header plus every line item are written inside a single
// transaction: a reader can never observe a header without its items.
func (s *OrderService) Create(ctx context.Context, userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	ok, err := s.Catalog.StoreExists(req.StoreID)
	if err != nil {
		return nil, apperr.Storage("store lookup", err)
	}
	if !ok {
		return nil, apperr.NotFound("store", req.StoreID)
	}

	// resolve prices before touching the orders table
	type line struct {
		menuItemID uint
		qty        int
		unitPrice  int64
	}
	lines := make([]line, 0, len(req.Items))
	var total int64
	for _, it := range req.Items {
		m, err := s.Catalog.GetMenuBasics(it.MenuItemID)
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("menu item", it.MenuItemID)
		}
		if err != nil {
			return nil, apperr.Storage("menu lookup", err)
		}
		// one order belongs to one store; cross-store carts are rejected
		if m.StoreID != req.StoreID {
			return nil, apperr.Validation("items", "menu item does not belong to this store")
		}
		if !m.Available {
			return nil, apperr.Validation("items", "menu item is not available")
		}
		total += m.Price * int64(it.Qty)
		lines = append(lines, line{menuItemID: m.ID, qty: it.Qty, unitPrice: m.Price})
	}

	order := entity.Order{
		Code:            uuid.NewString(),
		Status:          entity.StatusPending,
		TotalAmount:     total,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		DeliveryLat:     req.DeliveryLat,
		DeliveryLng:     req.DeliveryLng,
		Notes:           req.Notes,
		UserID:          userID,
		StoreID:         req.StoreID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		items := make([]entity.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, entity.OrderItem{
				Qty:        l.qty,
				UnitPrice:  l.unitPrice,
				OrderID:    order.ID,
				MenuItemID: l.menuItemID,
			})
		}
		return s.Repo.CreateOrderItems(tx, items)
	})
	if err != nil {
		return nil, apperr.Storage("order create", err)
	}

	s.Metrics.IncCreated()
	if err := s.Events.OrderCreated(ctx, &order); err != nil {
		log.Printf("publish order created: %v", err)
	}
	return &order, nil
}

// ----- reads -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("order", orderID)
	}
	if err != nil {
		return nil, apperr.Storage("order lookup", err)
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Storage("order items lookup", err)
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// Detail is the operator-side read; no ownership filter.
func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Storage("order items lookup", err)
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) ListAll(status *entity.OrderStatus, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrders(status, page, limit)
	if err != nil {
		return nil, apperr.Storage("order list", err)
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}
