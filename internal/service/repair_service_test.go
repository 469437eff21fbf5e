package service

import (
	"regexp"
	"testing"
	"time"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/internal/ws"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepairService(t *testing.T) (RepairService, *gorm.DB) {
	db := newTestDB(t)
	hub := ws.NewHub()
	go hub.Run()
	return NewRepairService(repository.NewRepairRepo(db), repository.NewCategoryRepo(db), hub), db
}

func newIntake() *model.RepairRequest {
	return &model.RepairRequest{
		CustomerName:       "Ali Demir",
		CustomerPhone:      "05551112233",
		DeviceType:         "Laptop",
		DeviceBrand:        "Lenovo",
		ProblemDescription: "Does not power on",
	}
}

func TestCreateRequestDefaults(t *testing.T) {
	svc, _ := newRepairService(t)

	request, err := svc.CreateRequest(newIntake(), []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}, "system")
	require.NoError(t, err)

	assert.Equal(t, model.RepairPending, request.Status)
	assert.Regexp(t, regexp.MustCompile(`^TR[A-Z0-9]+$`), request.TrackingNumber)
	assert.Equal(t, model.ApprovalPending, request.CustomerApproved)
	assert.Nil(t, request.ApprovedAt)

	require.Len(t, request.Images, 2)
	assert.Equal(t, "https://cdn.example.com/1.jpg", request.Images[0].ImageURL)
	assert.Equal(t, 0, request.Images[0].Order)
	assert.Equal(t, 1, request.Images[1].Order)
}

func TestCreateRequestValidation(t *testing.T) {
	svc, _ := newRepairService(t)

	intake := newIntake()
	intake.DeviceType = ""
	_, err := svc.CreateRequest(intake, nil, "system")
	assert.Error(t, err)
}

func TestTrackingLookup(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), []string{"https://cdn.example.com/1.jpg"}, "system")
	require.NoError(t, err)

	found, err := svc.GetRequestByTracking(created.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Len(t, found.Images, 1)

	_, err = svc.GetRequestByTracking("TRDOESNOTEXIST")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestQuotePriceRequiresFinalPrice(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), nil, "system")
	require.NoError(t, err)

	_, err = svc.QuotePrice(created.ID, QuotePriceInput{}, "admin")
	assert.ErrorIs(t, err, ErrFinalPriceRequired)
}

func TestQuotePriceTransition(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), nil, "system")
	require.NoError(t, err)

	price := decimal.RequireFromString("1500.00")
	labor := decimal.RequireFromString("400.00")
	notes := "Mainboard replacement needed"
	quoted, err := svc.QuotePrice(created.ID, QuotePriceInput{
		FinalPrice:     &price,
		LaborCost:      &labor,
		DiagnosisNotes: &notes,
		RepairItems: model.RepairItemList{
			{Type: "part", Description: "Mainboard", Price: decimal.RequireFromString("1100.00")},
		},
	}, "admin")
	require.NoError(t, err)

	assert.Equal(t, model.RepairPriceQuoted, quoted.Status)
	require.NotNil(t, quoted.FinalPrice)
	assert.True(t, quoted.FinalPrice.Equal(price))
	assert.Equal(t, model.ApprovalPending, quoted.CustomerApproved)
	assert.Nil(t, quoted.ApprovedAt)
	require.Len(t, quoted.RepairItems, 1)
	assert.Equal(t, "Mainboard", quoted.RepairItems[0].Description)
}

func TestRequoteResetsApproval(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), nil, "system")
	require.NoError(t, err)

	price := decimal.RequireFromString("1500.00")
	_, err = svc.QuotePrice(created.ID, QuotePriceInput{FinalPrice: &price}, "admin")
	require.NoError(t, err)

	approved, err := svc.SetApproval(created.TrackingNumber, true)
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, approved.CustomerApproved)
	require.NotNil(t, approved.ApprovedAt)

	// Re-quoting always resets the decision, whatever it was
	newPrice := decimal.RequireFromString("1800.00")
	requoted, err := svc.QuotePrice(created.ID, QuotePriceInput{FinalPrice: &newPrice}, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RepairPriceQuoted, requoted.Status)
	assert.Equal(t, model.ApprovalPending, requoted.CustomerApproved)
	assert.Nil(t, requoted.ApprovedAt)
}

func TestApproveAndReject(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), nil, "system")
	require.NoError(t, err)

	price := decimal.RequireFromString("900.00")
	_, err = svc.QuotePrice(created.ID, QuotePriceInput{FinalPrice: &price}, "admin")
	require.NoError(t, err)

	approved, err := svc.SetApproval(created.TrackingNumber, true)
	require.NoError(t, err)
	assert.Equal(t, model.RepairCustomerApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedAt)

	rejected, err := svc.SetApproval(created.TrackingNumber, false)
	require.NoError(t, err)
	assert.Equal(t, model.RepairCustomerRejected, rejected.Status)
	assert.Equal(t, model.ApprovalRejected, rejected.CustomerApproved)
	assert.Nil(t, rejected.ApprovedAt)

	_, err = svc.SetApproval("TRDOESNOTEXIST", true)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatusStoresVerbatim(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), nil, "system")
	require.NoError(t, err)

	// Any string is accepted, no transition table
	updated, err := svc.UpdateStatus(created.ID, UpdateStatusInput{Status: "waiting_for_parts"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RepairStatus("waiting_for_parts"), updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateStatusStampsTimestamps(t *testing.T) {
	svc, _ := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), nil, "system")
	require.NoError(t, err)

	completed, err := svc.UpdateStatus(created.ID, UpdateStatusInput{Status: string(model.RepairCompleted)}, "admin")
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)
	first := *completed.CompletedAt

	time.Sleep(10 * time.Millisecond)

	// Repeated calls move the timestamp forward
	again, err := svc.UpdateStatus(created.ID, UpdateStatusInput{Status: string(model.RepairCompleted)}, "admin")
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, !again.CompletedAt.Before(first))

	delivered, err := svc.UpdateStatus(created.ID, UpdateStatusInput{Status: string(model.RepairDelivered)}, "admin")
	require.NoError(t, err)
	assert.NotNil(t, delivered.DeliveredAt)
}

func TestDeleteRequestRemovesImages(t *testing.T) {
	svc, db := newRepairService(t)

	created, err := svc.CreateRequest(newIntake(), []string{"https://cdn.example.com/1.jpg"}, "system")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRequest(created.ID))

	_, err = svc.GetRequest(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var imageCount int64
	db.Model(&model.RepairRequestImage{}).Where("repair_request_id = ?", created.ID).Count(&imageCount)
	assert.EqualValues(t, 0, imageCount)
}
