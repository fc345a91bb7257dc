package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
)

type LocationService struct {
	Repo *repository.LocationRepository
}

func NewLocationService(repo *repository.LocationRepository) *LocationService {
	return &LocationService{Repo: repo}
}

type LocationIn struct {
	Label   string  `json:"label"`
	Address string  `json:"address" binding:"required"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func (in *LocationIn) validate() error {
	if strings.TrimSpace(in.Address) == "" {
		return apperr.Validation("address", "required")
	}
	if in.Lat < -90 || in.Lat > 90 {
		return apperr.Validation("lat", "must be within [-90, 90]")
	}
	if in.Lng < -180 || in.Lng > 180 {
		return apperr.Validation("lng", "must be within [-180, 180]")
	}
	return nil
}

func (s *LocationService) List(userID uint) ([]entity.Location, error) {
	return s.Repo.ListForUser(userID)
}

func (s *LocationService) Create(userID uint, in *LocationIn) (*entity.Location, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	l := &entity.Location{
		Label:   in.Label,
		Address: strings.TrimSpace(in.Address),
		Lat:     in.Lat,
		Lng:     in.Lng,
		UserID:  userID,
	}
	if err := s.Repo.Create(l); err != nil {
		return nil, apperr.Storage("location create", err)
	}
	return l, nil
}

func (s *LocationService) Update(userID, id uint, in *LocationIn) (*entity.Location, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	affected, err := s.Repo.Update(userID, id, map[string]any{
		"label":   in.Label,
		"address": strings.TrimSpace(in.Address),
		"lat":     in.Lat,
		"lng":     in.Lng,
	})
	if err != nil {
		return nil, apperr.Storage("location update", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("location", id)
	}
	l, err := s.Repo.GetForUser(userID, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("location", id)
	}
	if err != nil {
		return nil, apperr.Storage("location lookup", err)
	}
	return l, nil
}

func (s *LocationService) Delete(userID, id uint) error {
	affected, err := s.Repo.Delete(userID, id)
	if err != nil {
		return apperr.Storage("location delete", err)
	}
	if affected == 0 {
		return apperr.NotFound("location", id)
	}
	return nil
}
