package services

import (
	"context"

	"restaurant-site-api/models"

	"gorm.io/gorm"
)

type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

// List returns reservations newest first, for the admin screen.
func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reservations).Error
	return reservations, err
}

func (s *ReservationService) Create(ctx context.Context, r *models.Reservation) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ReservationService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
