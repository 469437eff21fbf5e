package repository

import (
	"go-teknostore-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RepairRepository interface {
	Create(request *model.RepairRequest) error
	FindAll() ([]model.RepairRequest, error)
	FindByID(id uuid.UUID) (*model.RepairRequest, error)
	FindByTrackingNumber(trackingNumber string) (*model.RepairRequest, error)
	Updates(id uuid.UUID, fields map[string]interface{}) (*model.RepairRequest, error)
	Delete(id uuid.UUID) error

	CreateImage(image *model.RepairRequestImage) error
	FindImages(requestID uuid.UUID) ([]model.RepairRequestImage, error)
	DeleteImage(id uuid.UUID) error
}

type repairRepo struct {
	db *gorm.DB
}

func NewRepairRepo(db *gorm.DB) RepairRepository {
	return &repairRepo{db}
}

func (r *repairRepo) Create(request *model.RepairRequest) error {
	return r.db.Create(request).Error
}

func (r *repairRepo) FindAll() ([]model.RepairRequest, error) {
	var requests []model.RepairRequest
	err := r.db.Preload("RepairService").Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repairRepo) FindByID(id uuid.UUID) (*model.RepairRequest, error) {
	var request model.RepairRequest
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Preload("RepairService").First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repairRepo) FindByTrackingNumber(trackingNumber string) (*model.RepairRequest, error) {
	var request model.RepairRequest
	err := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Preload("RepairService").First(&request, "tracking_number = ?", trackingNumber).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Updates applies a partial write. Map updates let callers reset columns to
// NULL (approved_at on re-quote), which struct updates would skip.
func (r *repairRepo) Updates(id uuid.UUID, fields map[string]interface{}) (*model.RepairRequest, error) {
	if err := r.db.Model(&model.RepairRequest{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *repairRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.RepairRequest{}, "id = ?", id).Error
}

func (r *repairRepo) CreateImage(image *model.RepairRequestImage) error {
	return r.db.Create(image).Error
}

func (r *repairRepo) FindImages(requestID uuid.UUID) ([]model.RepairRequestImage, error) {
	var images []model.RepairRequestImage
	err := r.db.Where("repair_request_id = ?", requestID).Order("sort_order ASC").Find(&images).Error
	return images, err
}

func (r *repairRepo) DeleteImage(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.RepairRequestImage{}, "id = ?", id).Error
}
