package model

import "github.com/google/uuid"

// Category is a node in the self-referencing catalog tree. The parent graph
// is assumed acyclic; admin tooling is responsible for keeping it that way.
type Category struct {
	BaseModel
	Name     string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Slug     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	ParentID *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Icon     string     `gorm:"type:varchar(255)" json:"icon,omitempty"`
	Order    int        `gorm:"column:display_order;default:0" json:"order"`

	Products []Product `json:"-"`
}

// CategoryNode is a category inside the hierarchical forest response.
// ProductCount on a root node is the full subtree total; on nested nodes it
// is the direct count only.
type CategoryNode struct {
	Category
	ProductCount int64           `json:"product_count"`
	Children     []*CategoryNode `json:"children"`
}

// CategoryWithCount is the flat list-by-parent response shape.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"product_count"`
}
