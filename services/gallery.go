package services

import (
	"context"

	"restaurant-site-api/models"

	"gorm.io/gorm"
)

type GalleryService struct {
	db *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

// List returns gallery images, home-featured ones first, newest first within
// each group.
func (s *GalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	images := []models.GalleryImage{}
	err := s.db.WithContext(ctx).
		Order("is_home_featured DESC, created_at DESC").
		Find(&images).Error
	return images, err
}

func (s *GalleryService) Create(ctx context.Context, img *models.GalleryImage) error {
	return s.db.WithContext(ctx).Create(img).Error
}

// ToggleHomeFeatured flips is_home_featured in a single atomic statement.
func (s *GalleryService) ToggleHomeFeatured(ctx context.Context, id uint) (*models.GalleryImage, error) {
	res := s.db.WithContext(ctx).Model(&models.GalleryImage{}).
		Where("id = ?", id).
		UpdateColumn("is_home_featured", gorm.Expr("NOT is_home_featured"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var img models.GalleryImage
	if err := s.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.GalleryImage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
