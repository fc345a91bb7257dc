package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name      string `gorm:"uniqueIndex;not null" json:"name"`
	SortOrder int    `json:"sortOrder"`
	Active    bool   `gorm:"default:true" json:"active"`

	Stores []Store `json:"-"`
}
