package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Code is the identifier handed to clients; the numeric ID stays internal.
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	Status OrderStatus `gorm:"not null;default:pending" json:"status"`

	// sum of qty×unitPrice over the line items, snapshotted at creation;
	// never recomputed from current catalog prices
	TotalAmount int64 `json:"totalAmount"`

	DeliveryAddress string   `gorm:"not null" json:"deliveryAddress"`
	DeliveryLat     *float64 `json:"deliveryLat,omitempty"`
	DeliveryLng     *float64 `json:"deliveryLng,omitempty"`
	Notes           string   `json:"notes"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for admin detail

	StoreID uint  `json:"storeId"`
	Store   Store `json:"-"`

	// preload only for detail
	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
