package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Store{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Location{},
	)
}
