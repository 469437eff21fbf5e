package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/internal/ws"
	"go-teknostore-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrFinalPriceRequired = errors.New("final price is required")

// QuotePriceInput is the admin price-quote payload. FinalPrice is the only
// required field.
type QuotePriceInput struct {
	FinalPrice     *decimal.Decimal     `json:"final_price"`
	LaborCost      *decimal.Decimal     `json:"labor_cost"`
	PartsCost      *decimal.Decimal     `json:"parts_cost"`
	DiagnosisNotes *string              `json:"diagnosis_notes"`
	RepairItems    model.RepairItemList `json:"repair_items"`
}

// UpdateStatusInput sets the status string verbatim. Unknown values are
// accepted on purpose; the workflow contract is permissive.
type UpdateStatusInput struct {
	Status      string               `json:"status"`
	RepairNotes *string              `json:"repair_notes"`
	RepairItems model.RepairItemList `json:"repair_items"`
}

type RepairService interface {
	CreateRequest(req *model.RepairRequest, imageURLs []string, userID string) (*model.RepairRequest, error)
	GetRequests() ([]model.RepairRequest, error)
	GetRequest(id uuid.UUID) (*model.RepairRequest, error)
	GetRequestByTracking(trackingNumber string) (*model.RepairRequest, error)
	QuotePrice(id uuid.UUID, input QuotePriceInput, userID string) (*model.RepairRequest, error)
	SetApproval(trackingNumber string, approved bool) (*model.RepairRequest, error)
	UpdateStatus(id uuid.UUID, input UpdateStatusInput, userID string) (*model.RepairRequest, error)
	DeleteRequest(id uuid.UUID) error
	DeleteImage(id uuid.UUID) error
}

type repairService struct {
	repairRepo   repository.RepairRepository
	categoryRepo repository.CategoryRepository
	wsHub        *ws.Hub
}

func NewRepairService(rRepo repository.RepairRepository, cRepo repository.CategoryRepository, hub *ws.Hub) RepairService {
	return &repairService{
		repairRepo:   rRepo,
		categoryRepo: cRepo,
		wsHub:        hub,
	}
}

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateReference builds a customer-facing reference: prefix + base-36
// timestamp + random suffix. Collisions are theoretically possible and not
// retried; uniqueness is enforced by the database index.
func generateReference(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return prefix + ts + string(suffix)
}

// CreateRequest takes a customer (or admin) submission, forces status to
// pending, generates the tracking number and attaches any pre-uploaded image
// URLs. Image attachment is not atomic with request creation: a failure
// mid-sequence leaves the request without some images.
func (s *repairService) CreateRequest(req *model.RepairRequest, imageURLs []string, userID string) (*model.RepairRequest, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.RepairServiceID != nil {
		if _, err := s.categoryRepo.FindByID(*req.RepairServiceID); err != nil {
			return nil, errors.New("repair service category not found")
		}
	}

	req.TrackingNumber = generateReference("TR")
	req.Status = model.RepairPending
	req.CustomerApproved = model.ApprovalPending
	req.CreatedBy = userID
	req.UpdatedBy = userID

	if err := s.repairRepo.Create(req); err != nil {
		return nil, err
	}

	for i, url := range imageURLs {
		image := &model.RepairRequestImage{
			RepairRequestID: req.ID,
			ImageURL:        url,
			Order:           i,
		}
		if err := s.repairRepo.CreateImage(image); err != nil {
			return nil, fmt.Errorf("request created but image %d failed to attach: %w", i, err)
		}
	}

	s.wsHub.Notify("repair_created", map[string]interface{}{
		"id":              req.ID,
		"tracking_number": req.TrackingNumber,
		"customer_name":   req.CustomerName,
		"device_type":     req.DeviceType,
	})

	return s.repairRepo.FindByID(req.ID)
}

func (s *repairService) GetRequests() ([]model.RepairRequest, error) {
	return s.repairRepo.FindAll()
}

func (s *repairService) GetRequest(id uuid.UUID) (*model.RepairRequest, error) {
	return s.repairRepo.FindByID(id)
}

func (s *repairService) GetRequestByTracking(trackingNumber string) (*model.RepairRequest, error) {
	return s.repairRepo.FindByTrackingNumber(trackingNumber)
}

// QuotePrice moves the request to price_quoted. Re-quoting always resets the
// customer decision: customer_approved goes back to undecided and approved_at
// is cleared, whatever their previous values.
func (s *repairService) QuotePrice(id uuid.UUID, input QuotePriceInput, userID string) (*model.RepairRequest, error) {
	if input.FinalPrice == nil {
		return nil, ErrFinalPriceRequired
	}
	if _, err := s.repairRepo.FindByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"status":            string(model.RepairPriceQuoted),
		"final_price":       *input.FinalPrice,
		"customer_approved": nil,
		"approved_at":       nil,
		"updated_by":        userID,
	}
	if input.LaborCost != nil {
		fields["labor_cost"] = *input.LaborCost
	}
	if input.PartsCost != nil {
		fields["parts_cost"] = *input.PartsCost
	}
	if input.DiagnosisNotes != nil {
		fields["diagnosis_notes"] = *input.DiagnosisNotes
	}
	if input.RepairItems != nil {
		fields["repair_items"] = input.RepairItems
	}

	return s.repairRepo.Updates(id, fields)
}

// SetApproval records the customer's decision, keyed by tracking number.
func (s *repairService) SetApproval(trackingNumber string, approved bool) (*model.RepairRequest, error) {
	request, err := s.repairRepo.FindByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"customer_approved": approved,
	}
	if approved {
		fields["status"] = string(model.RepairCustomerApproved)
		fields["approved_at"] = time.Now()
	} else {
		fields["status"] = string(model.RepairCustomerRejected)
		fields["approved_at"] = nil
	}

	updated, err := s.repairRepo.Updates(request.ID, fields)
	if err != nil {
		return nil, err
	}

	s.wsHub.Notify("repair_status_changed", map[string]interface{}{
		"id":              updated.ID,
		"tracking_number": updated.TrackingNumber,
		"status":          updated.Status,
	})
	return updated, nil
}

// UpdateStatus stores the status string verbatim. completed and delivered
// stamp their timestamps on every call, so repeated calls move the timestamp
// forward.
func (s *repairService) UpdateStatus(id uuid.UUID, input UpdateStatusInput, userID string) (*model.RepairRequest, error) {
	if input.Status == "" {
		return nil, errors.New("status is required")
	}
	if _, err := s.repairRepo.FindByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"status":     input.Status,
		"updated_by": userID,
	}
	if input.RepairNotes != nil {
		fields["repair_notes"] = *input.RepairNotes
	}
	if input.RepairItems != nil {
		fields["repair_items"] = input.RepairItems
	}
	switch model.RepairStatus(input.Status) {
	case model.RepairCompleted:
		fields["completed_at"] = time.Now()
	case model.RepairDelivered:
		fields["delivered_at"] = time.Now()
	}

	updated, err := s.repairRepo.Updates(id, fields)
	if err != nil {
		return nil, err
	}

	s.wsHub.Notify("repair_status_changed", map[string]interface{}{
		"id":              updated.ID,
		"tracking_number": updated.TrackingNumber,
		"status":          updated.Status,
	})
	return updated, nil
}

// DeleteRequest is an administrative override, not part of the lifecycle.
func (s *repairService) DeleteRequest(id uuid.UUID) error {
	request, err := s.repairRepo.FindByID(id)
	if err != nil {
		return err
	}
	for _, image := range request.Images {
		if err := s.repairRepo.DeleteImage(image.ID); err != nil {
			return err
		}
	}
	return s.repairRepo.Delete(id)
}

func (s *repairService) DeleteImage(id uuid.UUID) error {
	return s.repairRepo.DeleteImage(id)
}
