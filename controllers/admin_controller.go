package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/resp"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
)

type AdminController struct {
	Orders  *services.OrderService
	Catalog *services.CatalogService
}

func NewAdminController(orders *services.OrderService, catalog *services.CatalogService) *AdminController {
	return &AdminController{Orders: orders, Catalog: catalog}
}

// ----- order management -----

// GET /admin/orders?status=&page=&limit=
func (ad *AdminController) ListOrders(c *gin.Context) {
	var status *entity.OrderStatus
	if raw := c.Query("status"); raw != "" {
		s, ok := entity.ParseOrderStatus(raw)
		if !ok {
			resp.BadRequest(c, "unknown status")
			return
		}
		status = &s
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ad.Orders.ListAll(status, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (ad *AdminController) OrderDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := ad.Orders.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

type advanceStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (ad *AdminController) AdvanceStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req advanceStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	target, valid := entity.ParseOrderStatus(req.Status)
	if !valid {
		resp.BadRequest(c, "unknown status")
		return
	}
	order, err := ad.Orders.Advance(c.Request.Context(), id, target)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// ----- catalog management -----

// POST /admin/categories
func (ad *AdminController) CreateCategory(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := ad.Catalog.CreateCategory(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

type updateCategoryReq struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

// PATCH /admin/categories/:id
func (ad *AdminController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ad.Catalog.UpdateCategory(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /admin/stores
func (ad *AdminController) CreateStore(c *gin.Context) {
	var req services.StoreIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	st, err := ad.Catalog.CreateStore(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, st)
}

type updateStoreReq struct {
	Name    *string  `json:"name"`
	Address *string  `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Open    *bool    `json:"open"`
}

// PATCH /admin/stores/:id
func (ad *AdminController) UpdateStore(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Lat != nil {
		updates["lat"] = *req.Lat
	}
	if req.Lng != nil {
		updates["lng"] = *req.Lng
	}
	if req.Open != nil {
		updates["open"] = *req.Open
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ad.Catalog.UpdateStore(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /admin/menu-items
func (ad *AdminController) CreateMenuItem(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := ad.Catalog.CreateMenuItem(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

type updateMenuItemReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Available   *bool   `json:"available"`
}

// PATCH /admin/menu-items/:id
func (ad *AdminController) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}
	if err := ad.Catalog.UpdateMenuItem(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
