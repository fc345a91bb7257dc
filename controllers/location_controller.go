package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/resp"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

type LocationController struct {
	Svc *services.LocationService
}

func NewLocationController(svc *services.LocationService) *LocationController {
	return &LocationController{Svc: svc}
}

// GET /locations
func (lc *LocationController) List(c *gin.Context) {
	items, err := lc.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /locations
func (lc *LocationController) Create(c *gin.Context) {
	var req services.LocationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	l, err := lc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, l)
}

// PATCH /locations/:id
func (lc *LocationController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req services.LocationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	l, err := lc.Svc.Update(utils.CurrentUserID(c), id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, l)
}

// DELETE /locations/:id
func (lc *LocationController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := lc.Svc.Delete(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
