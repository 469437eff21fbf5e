package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlogPost is a CMS article shown on the storefront blog.
type BlogPost struct {
	BaseModel
	Title      string `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Slug       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Excerpt    string `gorm:"type:varchar(500)" json:"excerpt,omitempty"`
	Body       string `gorm:"type:text" json:"body"`
	CoverImage string `gorm:"type:varchar(500)" json:"cover_image,omitempty"`

	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Campaign is a time-boxed storefront promotion banner.
type Campaign struct {
	BaseModel
	Title           string          `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Slug            string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	BannerImage     string          `gorm:"type:varchar(500)" json:"banner_image,omitempty"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`

	StartsAt time.Time `gorm:"not null" json:"starts_at" validate:"required"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at" validate:"required"`
	Active   bool      `gorm:"default:true" json:"active"`
}

// IsRunning reports whether the campaign is active at the given instant.
func (c *Campaign) IsRunning(now time.Time) bool {
	return c.Active && !now.Before(c.StartsAt) && now.Before(c.EndsAt)
}
