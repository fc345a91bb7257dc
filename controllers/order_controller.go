package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/resp"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(c.Request.Context(), uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	items, err := oc.Svc.ListForUser(uid, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := oc.Svc.DetailForUser(uid, id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	operator := utils.CurrentRole(c) == "admin"
	order, err := oc.Svc.Cancel(c.Request.Context(), id, uid, operator)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}
