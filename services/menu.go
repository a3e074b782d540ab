package services

import (
	"context"
	"errors"

	"restaurant-site-api/models"

	"gorm.io/gorm"
)

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// List returns the whole menu, optionally filtered by exact category name.
// Ordering is fixed: explicit priority first, then featured items, then
// insertion order.
func (s *MenuService) List(ctx context.Context, category string) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := s.db.WithContext(ctx).Order("priority ASC, is_featured DESC, id ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&items).Error
	return items, err
}

func (s *MenuService) Create(ctx context.Context, item *models.MenuItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update fully replaces the mutable fields of a menu item.
func (s *MenuService) Update(ctx context.Context, id uint, fields models.MenuItem) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        fields.Name,
		"category":    fields.Category,
		"price":       fields.Price,
		"description": fields.Description,
		"image":       fields.Image,
		"priority":    fields.Priority,
	}
	if err := s.db.WithContext(ctx).Model(&item).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleFeatured flips is_featured in a single statement so concurrent
// toggles go through the database's atomic read-modify-write.
func (s *MenuService) ToggleFeatured(ctx context.Context, id uint) (*models.MenuItem, error) {
	res := s.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("id = ?", id).
		UpdateColumn("is_featured", gorm.Expr("NOT is_featured"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
