package services

import (
	"context"

	"restaurant-site-api/models"

	"gorm.io/gorm"
)

type SpaceService struct {
	db *gorm.DB
}

func NewSpaceService(db *gorm.DB) *SpaceService {
	return &SpaceService{db: db}
}

func (s *SpaceService) List(ctx context.Context) ([]models.Space, error) {
	spaces := []models.Space{}
	err := s.db.WithContext(ctx).Order("id ASC").Find(&spaces).Error
	return spaces, err
}

func (s *SpaceService) Create(ctx context.Context, space *models.Space) error {
	return s.db.WithContext(ctx).Create(space).Error
}

func (s *SpaceService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Space{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
