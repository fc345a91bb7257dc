package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- writes ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	for i := range items {
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// UpdateStatusGuard commits a transition only if the persisted status still
// equals from. RowsAffected == 0 means the row is gone or a concurrent
// writer got there first; the caller re-reads and classifies.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// ---------------- reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint               `json:"id"`
	Code        string             `json:"code"`
	StoreID     uint               `json:"storeId"`
	TotalAmount int64              `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, code, store_id, total_amount, status, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type AdminOrderSummary struct {
	ID          uint               `json:"id"`
	Code        string             `json:"code"`
	UserID      uint               `json:"userId"`
	StoreID     uint               `json:"storeId"`
	TotalAmount int64              `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(status *entity.OrderStatus, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	count := r.DB.Model(&entity.Order{})
	if status != nil {
		count = count.Where("status = ?", *status)
	}
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []AdminOrderSummary
	q := r.DB.Model(&entity.Order{}).
		Select("id, code, user_id, store_id, total_amount, status, created_at")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("id DESC").Limit(limit).Offset(offset).Scan(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
