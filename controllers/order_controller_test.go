package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	userID  uint
	storeID uint
	itemA   uint
	itemB   uint
}

// identityAs stands in for the JWT middleware.
func identityAs(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("role", role)
		c.Next()
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&entity.User{}, &entity.Category{}, &entity.Store{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &testEnv{db: db}

	user := entity.User{Phone: "+15550001111", Role: "customer"}
	cat := entity.Category{Name: "Food"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	st := entity.Store{Name: "Pasta Place", CategoryID: cat.ID, Open: true}
	if err := db.Create(&st).Error; err != nil {
		t.Fatal(err)
	}
	a := entity.MenuItem{Name: "Carbonara", Price: 500, StoreID: st.ID, Available: true}
	b := entity.MenuItem{Name: "Garlic Bread", Price: 350, StoreID: st.ID, Available: true}
	if err := db.Create(&a).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatal(err)
	}
	env.userID, env.storeID, env.itemA, env.itemB = user.ID, st.ID, a.ID, b.ID

	orderSvc := services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCatalogRepository(db),
		nil, nil,
	)
	orderCtrl := NewOrderController(orderSvc)
	catalogSvc := services.NewCatalogService(repository.NewCatalogRepository(db))
	adminCtrl := NewAdminController(orderSvc, catalogSvc)

	r := gin.New()
	u := r.Group("/", identityAs(user.ID, "customer"))
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}
	admin := r.Group("/admin", identityAs(user.ID, "admin"))
	{
		admin.PATCH("/orders/:id/status", adminCtrl.AdvanceStatus)
	}
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createOrder(t *testing.T) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/orders", gin.H{
		"storeId":         e.storeID,
		"items":           []gin.H{{"menuItemId": e.itemA, "qty": 2}, {"menuItemId": e.itemB, "qty": 1}},
		"deliveryAddress": "1 Main St",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: status %d body %s", w.Code, w.Body.String())
	}
	var out struct {
		Data struct {
			ID uint `json:"ID"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out.Data.ID
}

func TestOrderEndpoints(t *testing.T) {
	t.Run("create returns the computed total", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(t, http.MethodPost, "/orders", gin.H{
			"storeId":         env.storeID,
			"items":           []gin.H{{"menuItemId": env.itemA, "qty": 2}, {"menuItemId": env.itemB, "qty": 1}},
			"deliveryAddress": "1 Main St",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status %d body %s", w.Code, w.Body.String())
		}
		var out struct {
			Data struct {
				TotalAmount int64  `json:"totalAmount"`
				Status      string `json:"status"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Data.TotalAmount != 1350 {
			t.Errorf("total = %d, want 1350", out.Data.TotalAmount)
		}
		if out.Data.Status != "pending" {
			t.Errorf("status = %q, want pending", out.Data.Status)
		}
	})

	t.Run("create with malformed body is a 400", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/orders", gin.H{"storeId": env.storeID})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("create for an unknown store is a 404", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/orders", gin.H{
			"storeId":         env.storeID + 99,
			"items":           []gin.H{{"menuItemId": env.itemA, "qty": 1}},
			"deliveryAddress": "1 Main St",
		})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d body %s, want 404", w.Code, w.Body.String())
		}
	})

	t.Run("cancel then advance is a conflict", func(t *testing.T) {
		env := newTestEnv(t)
		id := env.createOrder(t)

		w := env.do(t, http.MethodPost, fmt.Sprintf("/orders/%d/cancel", id), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("cancel: status %d body %s", w.Code, w.Body.String())
		}

		w = env.do(t, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", id), gin.H{"status": "ready"})
		if w.Code != http.StatusConflict {
			t.Errorf("advance after cancel: status = %d, want 409", w.Code)
		}
	})

	t.Run("admin advance walks the pipeline", func(t *testing.T) {
		env := newTestEnv(t)
		id := env.createOrder(t)

		// skipping a step is rejected
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", id), gin.H{"status": "preparing"})
		if w.Code != http.StatusConflict {
			t.Errorf("pending→preparing: status = %d, want 409", w.Code)
		}

		w = env.do(t, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", id), gin.H{"status": "confirmed"})
		if w.Code != http.StatusOK {
			t.Errorf("pending→confirmed: status = %d body %s", w.Code, w.Body.String())
		}

		// unknown status names are a 400
		w = env.do(t, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", id), gin.H{"status": "shipped"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("unknown status: status = %d, want 400", w.Code)
		}
	})

	t.Run("detail includes line items", func(t *testing.T) {
		env := newTestEnv(t)
		id := env.createOrder(t)

		w := env.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status %d body %s", w.Code, w.Body.String())
		}
		var out struct {
			Data struct {
				Items []struct {
					Qty       int   `json:"qty"`
					UnitPrice int64 `json:"unitPrice"`
				} `json:"items"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(out.Data.Items) != 2 {
			t.Errorf("items = %d, want 2", len(out.Data.Items))
		}
	})
}
