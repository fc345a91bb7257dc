package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/configs"
	"github.com/AtifZafar596/Jetak-food-backend-api/controllers"
	"github.com/AtifZafar596/Jetak-food-backend-api/events"
	"github.com/AtifZafar596/Jetak-food-backend-api/middlewares"
	"github.com/AtifZafar596/Jetak-food-backend-api/notify"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/metrics"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
	"github.com/AtifZafar596/Jetak-food-backend-api/store"
	"github.com/AtifZafar596/Jetak-food-backend-api/ws"
)

// RegisterRoutes wires repositories, services and controllers onto the gin
// engine and returns the order hub so main can run it.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *configs.Config,
	kv store.KV,
	sms notify.Sender,
	pub events.Publisher,
	m *metrics.OrderMetrics,
) *ws.OrderHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, kv, sms, cfg.JWTSecret, cfg.JWTTTL, cfg.OTPTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, catalogRepo, pub, m)
	locationSvc := services.NewLocationService(locationRepo)

	hub := ws.NewOrderHub(orderSvc)
	orderSvc.SetListener(hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	locationCtrl := controllers.NewLocationController(locationSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, catalogSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret, kv)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, kv, "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/otp/request", authCtrl.RequestCode)
		a.POST("/otp/verify", authCtrl.VerifyCode)
		a.POST("/admin/login", authCtrl.AdminLogin)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Catalog (public)
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/stores", catalogCtrl.Stores)
	r.GET("/stores/:id", catalogCtrl.StoreDetail)
	r.GET("/stores/:id/menu", catalogCtrl.Menu)

	// Orders (customer)
	u := r.Group("/", auth)
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Locations (customer)
	loc := r.Group("/locations", auth)
	{
		loc.GET("", locationCtrl.List)
		loc.POST("", locationCtrl.Create)
		loc.PATCH("/:id", locationCtrl.Update)
		loc.DELETE("/:id", locationCtrl.Delete)
	}

	// Live order tracking
	r.GET("/ws/orders/:id", auth, hub.HandleWebSocket)

	// Admin (admin only)
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.GET("/orders/:id", adminCtrl.OrderDetail)
		admin.PATCH("/orders/:id/status", adminCtrl.AdvanceStatus)

		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCtrl.UpdateCategory)
		admin.POST("/stores", adminCtrl.CreateStore)
		admin.PATCH("/stores/:id", adminCtrl.UpdateStore)
		admin.POST("/menu-items", adminCtrl.CreateMenuItem)
		admin.PATCH("/menu-items/:id", adminCtrl.UpdateMenuItem)
	}

	return hub
}
