package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Payment methods. There is no payment gateway: WhatsApp orders are
// finalized over chat, bank transfers are reconciled manually.
const (
	PaymentWhatsApp     = "whatsapp"
	PaymentBankTransfer = "bank_transfer"
)

type Order struct {
	BaseModel
	OrderNumber string `gorm:"type:varchar(30);uniqueIndex;not null" json:"order_number"`

	CustomerName    string `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerPhone   string `gorm:"type:varchar(20);not null" json:"customer_phone" validate:"required"`
	CustomerEmail   string `gorm:"type:varchar(255)" json:"customer_email,omitempty"`
	ShippingAddress string `gorm:"type:text" json:"shipping_address,omitempty"`

	Status        OrderStatus     `gorm:"type:varchar(50);default:'pending'" json:"status"`
	PaymentMethod string          `gorm:"type:varchar(20)" json:"payment_method" validate:"required,oneof=whatsapp bank_transfer"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Note          string          `gorm:"type:text" json:"note,omitempty"`

	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// OrderItem snapshots the product title and unit price at checkout time so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	LineTotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
}
