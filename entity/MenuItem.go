package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// price in minor currency units (cents)
	Price     int64 `gorm:"not null" json:"price"`
	Available bool  `gorm:"default:true" json:"available"`

	StoreID uint  `json:"storeId"`
	Store   Store `json:"-"` // preload only when needed

	OrderItems []OrderItem `json:"-"`
}
