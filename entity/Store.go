package entity

import (
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	Name    string  `gorm:"not null" json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Open    bool    `gorm:"default:true" json:"open"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
