package models

import "time"

type GalleryImage struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Image          string    `json:"image" gorm:"not null"`
	Caption        string    `json:"caption"`
	IsHomeFeatured bool      `json:"isHomeFeatured" gorm:"default:false"`
	CreatedAt      time.Time `json:"createdAt"`
}
