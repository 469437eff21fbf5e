package repository

import (
	"time"

	"go-teknostore-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(post *model.BlogPost) error
	FindAll() ([]model.BlogPost, error)
	FindPublished() ([]model.BlogPost, error)
	FindByID(id uuid.UUID) (*model.BlogPost, error)
	FindBySlug(slug string) (*model.BlogPost, error)
	Update(post *model.BlogPost) error
	Delete(id uuid.UUID) error
}

type blogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) BlogRepository {
	return &blogRepo{db}
}

func (r *blogRepo) Create(post *model.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *blogRepo) FindAll() ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *blogRepo) FindPublished() ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.db.Where("published = ?", true).Order("published_at DESC").Find(&posts).Error
	return posts, err
}

func (r *blogRepo) FindByID(id uuid.UUID) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepo) FindBySlug(slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepo) Update(post *model.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *blogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.BlogPost{}, "id = ?", id).Error
}

type CampaignRepository interface {
	Create(campaign *model.Campaign) error
	FindAll() ([]model.Campaign, error)
	FindRunning(now time.Time) ([]model.Campaign, error)
	FindByID(id uuid.UUID) (*model.Campaign, error)
	Update(campaign *model.Campaign) error
	Delete(id uuid.UUID) error
}

type campaignRepo struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) CampaignRepository {
	return &campaignRepo{db}
}

func (r *campaignRepo) Create(campaign *model.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *campaignRepo) FindAll() ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := r.db.Order("starts_at DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *campaignRepo) FindRunning(now time.Time) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	err := r.db.
		Where("active = ? AND starts_at <= ? AND ends_at > ?", true, now, now).
		Order("starts_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *campaignRepo) FindByID(id uuid.UUID) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := r.db.First(&campaign, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepo) Update(campaign *model.Campaign) error {
	return r.db.Save(campaign).Error
}

func (r *campaignRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Campaign{}, "id = ?", id).Error
}
