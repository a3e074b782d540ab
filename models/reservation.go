package models

import "time"

// Reservation is append-only from the public site; there is no update path.
type Reservation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Date      string    `json:"date" gorm:"not null"`
	Time      string    `json:"time" gorm:"not null"`
	Guests    int       `json:"guests" gorm:"not null"`
	Space     string    `json:"space"`
	Occasion  string    `json:"occasion"`
	CreatedAt time.Time `json:"createdAt"`
}
