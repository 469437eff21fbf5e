package model

import "time"

// NewsletterSubscriber holds a storefront newsletter signup.
type NewsletterSubscriber struct {
	BaseModel
	Email          string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Unsubscribed   bool       `gorm:"default:false" json:"unsubscribed"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// ContactMessage is a storefront contact-form submission.
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email   string `gorm:"type:varchar(255);not null" json:"email" validate:"required,email"`
	Subject string `gorm:"type:varchar(255)" json:"subject,omitempty"`
	Body    string `gorm:"type:text;not null" json:"body" validate:"required"`
	Read    bool   `gorm:"column:is_read;default:false" json:"read"`
}
