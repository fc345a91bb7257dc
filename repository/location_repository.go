package repository

import (
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

type LocationRepository struct {
	DB *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{DB: db}
}

func (r *LocationRepository) ListForUser(userID uint) ([]entity.Location, error) {
	var out []entity.Location
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&out).Error
	return out, err
}

func (r *LocationRepository) GetForUser(userID, id uint) (*entity.Location, error) {
	var l entity.Location
	if err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LocationRepository) Create(l *entity.Location) error {
	return r.DB.Create(l).Error
}

func (r *LocationRepository) Update(userID, id uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Location{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *LocationRepository) Delete(userID, id uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Location{})
	return res.RowsAffected, res.Error
}
