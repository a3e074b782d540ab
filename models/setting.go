package models

// Setting stores small persistent key/value records. The only key today is
// "theme", whose value is an opaque JSON document replaced wholesale on write.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;size:128"`
	Value string `json:"value" gorm:"type:text"`
}

// ThemeKey is the singleton settings row holding site-wide display config.
const ThemeKey = "theme"

func (Setting) TableName() string { return "settings" }
