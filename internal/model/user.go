package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role codes as constants
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User represents an authenticated admin/staff user in the system
type User struct {
	BaseModel
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password   string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName   string     `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	Role       string     `gorm:"type:varchar(50);default:'STAFF'" json:"role"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
