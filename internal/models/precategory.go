// internal/models/precategory.go
package models

type PreCategory struct {
	BaseModel
	Address string `json:"address" gorm:"size:255"`
	RuName  string `json:"ru_name" gorm:"size:255"`
	EnName  string `json:"en_name" gorm:"size:255"`
}

func (PreCategory) TableName() string {
	return "pre_categories"
}

// ProductPreCategory links products to precategories. There is no
// uniqueness constraint over the pair: repeated link inserts produce
// duplicate rows, and deleting a product leaves its links behind.
type ProductPreCategory struct {
	ProductID     int64 `json:"product_id" gorm:"index"`
	PreCategoryID int64 `json:"pre_category_id" gorm:"index"`
}

func (ProductPreCategory) TableName() string {
	return "product_pre_categories"
}
