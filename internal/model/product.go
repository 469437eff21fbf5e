package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price" validate:"required"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"original_price,omitempty"` // set => product is discounted

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	InStock  bool `gorm:"default:true" json:"in_stock"`
	Featured bool `gorm:"default:false" json:"featured"`

	// SEO metadata
	MetaTitle       string `gorm:"type:varchar(255)" json:"meta_title,omitempty"`
	MetaDescription string `gorm:"type:varchar(500)" json:"meta_description,omitempty"`
}

// HasDiscount reports whether an original (pre-discount) price is present.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}
