package entity

import (
	"gorm.io/gorm"
)

// Location is a saved delivery address of one user.
type Location struct {
	gorm.Model
	Label   string  `json:"label"`
	Address string  `gorm:"not null" json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
