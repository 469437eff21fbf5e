package model

// PageView is a single storefront page hit, recorded fire-and-forget by the
// frontend. Aggregated by day for the admin dashboard.
type PageView struct {
	BaseModel
	Path        string `gorm:"type:varchar(500);not null;index" json:"path" validate:"required"`
	Referrer    string `gorm:"type:varchar(500)" json:"referrer,omitempty"`
	UserAgent   string `gorm:"type:varchar(500)" json:"user_agent,omitempty"`
	VisitorHash string `gorm:"type:varchar(64);index" json:"visitor_hash,omitempty"`
}
