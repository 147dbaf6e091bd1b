// internal/models/catalog.go
package models

type Color struct {
	BaseModel
	RuName string `json:"ru_name" gorm:"size:255"`
	EnName string `json:"en_name" gorm:"size:255"`
	RGB    string `json:"rgb" gorm:"column:rgb;size:128"`
}

type Form struct {
	BaseModel
	RuName     string  `json:"ru_name" gorm:"size:255"`
	EnName     string  `json:"en_name" gorm:"size:255"`
	ChangeForm float64 `json:"changeForm" gorm:"default:0"`
	// Image holds the stored relative path; absolute URLs are built
	// per read from the configured base URL.
	Image string `json:"image"`
}

type Review struct {
	BaseModel
	Title       string `json:"title" gorm:"size:255"`
	Description string `json:"description" gorm:"size:4096"`
	Rate        int    `json:"rate"`
	// ProductID is not a foreign key: reviews may reference products
	// that no longer exist and survive product deletion.
	ProductID int64 `json:"product_id" gorm:"index"`
}

// Category keeps its precategory references as an embedded ID list;
// unknown IDs are dropped when the category is read.
type Category struct {
	BaseModel
	Address     string    `json:"address" gorm:"size:255"`
	RuName      string    `json:"ru_name" gorm:"size:255"`
	EnName      string    `json:"en_name" gorm:"size:255"`
	PreCategory Int64List `json:"preCategory" gorm:"type:jsonb"`
}
