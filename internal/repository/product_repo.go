package repository

import (
	"go-teknostore-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindFeatured() ([]model.Product, error)
	FindByCategoryIDs(categoryIDs []uuid.UUID) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindFeatured() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("featured = ? AND in_stock = ?", true, true).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByCategoryIDs(categoryIDs []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").
		Where("category_id IN ?", categoryIDs).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
