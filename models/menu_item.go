package models

// MenuItem is a dish on the menu. Category is a soft link by name: it does
// not have to match an existing Category row.
type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	IsFeatured  bool    `json:"isFeatured" gorm:"default:false"`
	Priority    int     `json:"priority" gorm:"default:0"`
}
