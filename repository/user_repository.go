package repository

import (
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// FindOrCreateByPhone backs first-time OTP logins: an unknown phone becomes
// a fresh customer account.
func (r *UserRepository) FindOrCreateByPhone(phone string) (*entity.User, error) {
	u, err := r.FindByPhone(phone)
	if err == nil {
		return u, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	fresh := &entity.User{Phone: phone, Role: "customer"}
	if err := r.DB.Create(fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}
