package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/resp"
	"github.com/AtifZafar596/Jetak-food-backend-api/services"
)

type CatalogController struct {
	Svc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /categories
func (cc *CatalogController) Categories(c *gin.Context) {
	items, err := cc.Svc.Categories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /stores?categoryId=
func (cc *CatalogController) Stores(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		id := uint(id64)
		categoryID = &id
	}
	items, err := cc.Svc.Stores(categoryID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /stores/:id
func (cc *CatalogController) StoreDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	st, err := cc.Svc.StoreDetail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, st)
}

// GET /stores/:id/menu
func (cc *CatalogController) Menu(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	items, err := cc.Svc.Menu(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id64 == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id64), true
}
