package models

// Category groups menu items by name. Renaming a category cascades into
// every MenuItem carrying the old name.
type Category struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Image    string `json:"image"`
	Priority int    `json:"priority" gorm:"default:0"`
}
