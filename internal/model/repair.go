package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepairStatus values driven by named operations. Storage and the external
// contract stay permissive: admins may set any string via the status-update
// endpoint, these constants only name the transitions the workflow knows.
type RepairStatus string

const (
	RepairPending          RepairStatus = "pending"
	RepairDiagnosis        RepairStatus = "diagnosis"
	RepairPriceQuoted      RepairStatus = "price_quoted"
	RepairCustomerApproved RepairStatus = "customer_approved"
	RepairCustomerRejected RepairStatus = "customer_rejected"
	RepairInRepair         RepairStatus = "in_repair"
	RepairCompleted        RepairStatus = "completed"
	RepairDelivered        RepairStatus = "delivered"
)

// Approval is the customer's tri-state decision on a price quote. It is
// persisted as a nullable boolean (null = not yet decided).
type Approval int

const (
	ApprovalPending Approval = iota
	ApprovalApproved
	ApprovalRejected
)

func (a Approval) Value() (driver.Value, error) {
	switch a {
	case ApprovalApproved:
		return true, nil
	case ApprovalRejected:
		return false, nil
	default:
		return nil, nil
	}
}

func (a *Approval) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = ApprovalPending
	case bool:
		if v {
			*a = ApprovalApproved
		} else {
			*a = ApprovalRejected
		}
	case int64: // sqlite stores booleans as integers
		if v != 0 {
			*a = ApprovalApproved
		} else {
			*a = ApprovalRejected
		}
	default:
		return fmt.Errorf("cannot scan %T into Approval", src)
	}
	return nil
}

// MarshalJSON keeps the wire contract a nullable boolean.
func (a Approval) MarshalJSON() ([]byte, error) {
	switch a {
	case ApprovalApproved:
		return []byte("true"), nil
	case ApprovalRejected:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (a *Approval) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	switch {
	case b == nil:
		*a = ApprovalPending
	case *b:
		*a = ApprovalApproved
	default:
		*a = ApprovalRejected
	}
	return nil
}

// RepairItem is a single line on a repair quote (part, labor, etc).
type RepairItem struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// RepairItemList is stored serialized in a single column.
type RepairItemList []RepairItem

func (l RepairItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *RepairItemList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("cannot scan repair items")
}

// RepairRequest tracks a device from intake through diagnosis, quotation,
// customer approval, repair and delivery. The tracking number is the only
// customer-facing lookup key.
type RepairRequest struct {
	BaseModel
	TrackingNumber string `gorm:"type:varchar(30);uniqueIndex;not null" json:"tracking_number"`

	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerPhone string `gorm:"type:varchar(20);not null" json:"customer_phone" validate:"required"`
	CustomerEmail string `gorm:"type:varchar(255)" json:"customer_email,omitempty"`

	DeviceType   string `gorm:"type:varchar(100);not null" json:"device_type" validate:"required"`
	DeviceBrand  string `gorm:"type:varchar(100)" json:"device_brand,omitempty"`
	DeviceModel  string `gorm:"type:varchar(100)" json:"device_model,omitempty"`
	SerialNumber string `gorm:"type:varchar(100)" json:"serial_number,omitempty"`

	ProblemDescription string `gorm:"type:text;not null" json:"problem_description" validate:"required"`

	Status RepairStatus `gorm:"type:varchar(50);default:'pending'" json:"status"`

	EstimatedPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"estimated_price,omitempty"`
	FinalPrice     *decimal.Decimal `gorm:"type:decimal(12,2)" json:"final_price,omitempty"`
	LaborCost      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"labor_cost,omitempty"`
	PartsCost      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"parts_cost,omitempty"`

	CustomerApproved Approval   `gorm:"type:boolean" json:"customer_approved"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`

	DiagnosisNotes string         `gorm:"type:text" json:"diagnosis_notes,omitempty"`
	RepairNotes    string         `gorm:"type:text" json:"repair_notes,omitempty"`
	RepairItems    RepairItemList `gorm:"type:text" json:"repair_items,omitempty"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	RepairServiceID *uuid.UUID `gorm:"type:uuid;index" json:"repair_service_id,omitempty"`
	RepairService   *Category  `gorm:"foreignKey:RepairServiceID" json:"repair_service,omitempty"`

	Images []RepairRequestImage `gorm:"foreignKey:RepairRequestID" json:"images,omitempty"`
}

// RepairRequestImage is an ordered photo attached to a repair request.
type RepairRequestImage struct {
	BaseModel
	RepairRequestID uuid.UUID `gorm:"type:uuid;not null;index" json:"repair_request_id"`
	ImageURL        string    `gorm:"type:varchar(500);not null" json:"image_url" validate:"required"`
	Order           int       `gorm:"column:sort_order;default:0" json:"order"`
}
