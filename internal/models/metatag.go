// internal/models/metatag.go
package models

// Metatag holds the SEO fields for one page route. Address is the
// only unique natural key in the schema.
type Metatag struct {
	BaseModel
	Address     string `json:"address" gorm:"size:255;uniqueIndex"`
	Title       string `json:"title" gorm:"size:60"`
	Description string `json:"description" gorm:"size:160"`
	Keywords    string `json:"keywords" gorm:"size:1024"`
}
