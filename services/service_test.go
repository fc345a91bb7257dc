package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
)

// newTestDB opens a private in-memory sqlite database. cache=shared with a
// single connection keeps the database alive across the pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Store{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Location{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCatalogRepository(db),
		nil, // becomes events.Nop
		nil, // metrics are optional
	)
}

// seedCatalog creates a category, one store and two menu items priced in
// cents (5.00 and 3.50) and returns the store and item ids.
func seedCatalog(t *testing.T, db *gorm.DB) (storeID, itemA, itemB uint) {
	t.Helper()

	cat := entity.Category{Name: "Food"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	st := entity.Store{Name: "Pasta Place", CategoryID: cat.ID, Open: true}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	a := entity.MenuItem{Name: "Carbonara", Price: 500, StoreID: st.ID, Available: true}
	b := entity.MenuItem{Name: "Garlic Bread", Price: 350, StoreID: st.ID, Available: true}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return st.ID, a.ID, b.ID
}

func seedUser(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	u := entity.User{Phone: "+15550001111", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}
