package services

import (
	"context"
	"errors"

	"restaurant-site-api/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.WithContext(ctx).Order("priority ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (s *CategoryService) Create(ctx context.Context, cat *models.Category) error {
	return s.db.WithContext(ctx).Create(cat).Error
}

// Update replaces the category's fields. When the name changes, every menu
// item carrying the old name is moved to the new one in the same
// transaction: either both the category row and its menu items rename, or
// neither does.
func (s *CategoryService) Update(ctx context.Context, id uint, fields models.Category) (*models.Category, error) {
	var cat models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		oldName := cat.Name

		updates := map[string]interface{}{
			"name":     fields.Name,
			"image":    fields.Image,
			"priority": fields.Priority,
		}
		if err := tx.Model(&cat).Updates(updates).Error; err != nil {
			return err
		}

		if fields.Name != oldName {
			err := tx.Model(&models.MenuItem{}).
				Where("category = ?", oldName).
				Update("category", fields.Name).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes the category and cascades to every menu item under its
// name. The read-then-cascade runs in one transaction so a crash cannot
// leave orphaned menu rows behind.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&cat).Error; err != nil {
			return err
		}
		return tx.Where("category = ?", cat.Name).Delete(&models.MenuItem{}).Error
	})
}
