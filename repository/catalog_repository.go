package repository

import (
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- browsing ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Where("active = ?", true).Order("sort_order, id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListStores(categoryID *uint) ([]entity.Store, error) {
	var out []entity.Store
	q := r.DB.Where("open = ?", true)
	if categoryID != nil && *categoryID != 0 {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetStore(id uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepository) ListMenuItems(storeID uint, availableOnly bool) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := r.DB.Where("store_id = ?", storeID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	err := q.Order("id").Find(&out).Error
	return out, err
}

// ---------------- order-builder lookups ----------------

func (r *CatalogRepository) StoreExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Store{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GetMenuBasics loads just what pricing needs: id, price, owning store and
// availability.
func (r *CatalogRepository) GetMenuBasics(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Select("id, price, store_id, available").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ---------------- admin management ----------------

func (r *CatalogRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *CatalogRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) CreateStore(s *entity.Store) error {
	return r.DB.Create(s).Error
}

func (r *CatalogRepository) UpdateStore(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Store{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *CatalogRepository) UpdateMenuItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
