package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty int `gorm:"not null" json:"qty"`
	// unit price captured at order time; a later catalog price change
	// must not affect an already placed order
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the menu name is needed
}
