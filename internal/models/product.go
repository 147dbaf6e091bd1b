// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// Product price is scoped per storefront locale (later schema
// revision; the flat single price is historical).
type Price struct {
	RuName float64 `json:"ru_name" gorm:"column:ru_name;default:0"`
	EnName float64 `json:"en_name" gorm:"column:en_name;default:0"`
}

// ProductOptions carries the form/color toggles plus the referenced
// IDs. FormIDs/ColorIDs are stored as plain JSON arrays; dangling
// references are tolerated and dropped when the product is read.
type ProductOptions struct {
	IsForm   bool      `json:"isForm" gorm:"column:is_form;default:false"`
	IsColor  bool      `json:"isColor" gorm:"column:is_color;default:false"`
	FormIDs  Int64List `json:"formIds" gorm:"column:form_ids;type:jsonb"`
	ColorIDs Int64List `json:"colorIds" gorm:"column:color_ids;type:jsonb"`
}

type Product struct {
	BaseModel
	RuName  LocalizedText  `json:"ru_name" gorm:"embedded;embeddedPrefix:ru_name_"`
	EnName  LocalizedText  `json:"en_name" gorm:"embedded;embeddedPrefix:en_name_"`
	Images  pq.StringArray `json:"images" gorm:"type:text[]"`
	IsFrom  bool           `json:"isFrom" gorm:"default:false"`
	Price   Price          `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Options ProductOptions `json:"options" gorm:"embedded;embeddedPrefix:options_"`
}
