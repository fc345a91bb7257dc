package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

// SeedAdmin ensures the operator account from the environment exists.
// Skipped when ADMIN_PASSWORD is not set.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing entity.User
	err := db.Where("phone = ?", cfg.AdminPhone).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Phone:     cfg.AdminPhone,
		FirstName: "Admin",
		Role:      "admin",
		Password:  string(hashed),
	}
	return db.Create(&admin).Error
}
