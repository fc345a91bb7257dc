package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Phone     string `gorm:"uniqueIndex;not null" json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `gorm:"not null;default:customer" json:"role"`

	// admin accounts only; customers sign in via OTP
	Password string `json:"-"`

	// relations, preload only when needed
	Orders    []Order    `json:"-"`
	Locations []Location `json:"-"`
}
