package models

// Space is a bookable area of the restaurant (main hall, terrace, ...).
type Space struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
