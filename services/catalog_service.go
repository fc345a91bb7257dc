package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ----- browsing -----

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) Stores(categoryID *uint) ([]entity.Store, error) {
	return s.Repo.ListStores(categoryID)
}

func (s *CatalogService) StoreDetail(id uint) (*entity.Store, error) {
	st, err := s.Repo.GetStore(id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("store", id)
	}
	if err != nil {
		return nil, apperr.Storage("store lookup", err)
	}
	return st, nil
}

func (s *CatalogService) Menu(storeID uint) ([]entity.MenuItem, error) {
	if _, err := s.StoreDetail(storeID); err != nil {
		return nil, err
	}
	return s.Repo.ListMenuItems(storeID, true)
}

// ----- admin management -----

type CategoryIn struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func (s *CatalogService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name", "required")
	}
	c := &entity.Category{Name: strings.TrimSpace(in.Name), SortOrder: in.SortOrder, Active: true}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, apperr.Storage("category create", err)
	}
	return c, nil
}

type StoreIn struct {
	Name       string  `json:"name" binding:"required"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CategoryID uint    `json:"categoryId" binding:"required"`
	Open       *bool   `json:"open"`
}

func (s *CatalogService) CreateStore(in *StoreIn) (*entity.Store, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name", "required")
	}
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, apperr.Storage("category lookup", err)
	}
	if !ok {
		return nil, apperr.NotFound("category", in.CategoryID)
	}
	st := &entity.Store{
		Name:       strings.TrimSpace(in.Name),
		Address:    in.Address,
		Lat:        in.Lat,
		Lng:        in.Lng,
		CategoryID: in.CategoryID,
		Open:       true,
	}
	if in.Open != nil {
		st.Open = *in.Open
	}
	if err := s.Repo.CreateStore(st); err != nil {
		return nil, apperr.Storage("store create", err)
	}
	return st, nil
}

type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// price in minor currency units
	Price     int64 `json:"price" binding:"required,min=0"`
	StoreID   uint  `json:"storeId" binding:"required"`
	Available *bool `json:"available"`
}

func (s *CatalogService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name", "required")
	}
	if in.Price < 0 {
		return nil, apperr.Validation("price", "must be non-negative")
	}
	ok, err := s.Repo.StoreExists(in.StoreID)
	if err != nil {
		return nil, apperr.Storage("store lookup", err)
	}
	if !ok {
		return nil, apperr.NotFound("store", in.StoreID)
	}
	m := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		StoreID:     in.StoreID,
		Available:   true,
	}
	if in.Available != nil {
		m.Available = *in.Available
	}
	if err := s.Repo.CreateMenuItem(m); err != nil {
		return nil, apperr.Storage("menu item create", err)
	}
	return m, nil
}

func (s *CatalogService) UpdateMenuItem(id uint, updates map[string]any) error {
	if price, ok := updates["price"]; ok {
		if p, ok := price.(int64); ok && p < 0 {
			return apperr.Validation("price", "must be non-negative")
		}
	}
	if err := s.Repo.UpdateMenuItem(id, updates); err != nil {
		return apperr.Storage("menu item update", err)
	}
	return nil
}

func (s *CatalogService) UpdateCategory(id uint, updates map[string]any) error {
	ok, err := s.Repo.CategoryExists(id)
	if err != nil {
		return apperr.Storage("category lookup", err)
	}
	if !ok {
		return apperr.NotFound("category", id)
	}
	if err := s.Repo.UpdateCategory(id, updates); err != nil {
		return apperr.Storage("category update", err)
	}
	return nil
}

func (s *CatalogService) UpdateStore(id uint, updates map[string]any) error {
	ok, err := s.Repo.StoreExists(id)
	if err != nil {
		return apperr.Storage("store lookup", err)
	}
	if !ok {
		return apperr.NotFound("store", id)
	}
	if err := s.Repo.UpdateStore(id, updates); err != nil {
		return apperr.Storage("store update", err)
	}
	return nil
}
