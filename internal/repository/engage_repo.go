package repository

import (
	"time"

	"go-teknostore-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterRepository interface {
	FindByEmail(email string) (*model.NewsletterSubscriber, error)
	Create(subscriber *model.NewsletterSubscriber) error
	Update(subscriber *model.NewsletterSubscriber) error
	FindActive() ([]model.NewsletterSubscriber, error)
}

type newsletterRepo struct {
	db *gorm.DB
}

func NewNewsletterRepo(db *gorm.DB) NewsletterRepository {
	return &newsletterRepo{db}
}

func (r *newsletterRepo) FindByEmail(email string) (*model.NewsletterSubscriber, error) {
	var subscriber model.NewsletterSubscriber
	if err := r.db.First(&subscriber, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *newsletterRepo) Create(subscriber *model.NewsletterSubscriber) error {
	return r.db.Create(subscriber).Error
}

func (r *newsletterRepo) Update(subscriber *model.NewsletterSubscriber) error {
	return r.db.Save(subscriber).Error
}

func (r *newsletterRepo) FindActive() ([]model.NewsletterSubscriber, error) {
	var subscribers []model.NewsletterSubscriber
	err := r.db.Where("unsubscribed = ?", false).Order("created_at DESC").Find(&subscribers).Error
	return subscribers, err
}

type ContactRepository interface {
	Create(message *model.ContactMessage) error
	FindAll() ([]model.ContactMessage, error)
	FindByID(id uuid.UUID) (*model.ContactMessage, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
	CountUnread() (int64, error)
}

type contactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) ContactRepository {
	return &contactRepo{db}
}

func (r *contactRepo) Create(message *model.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *contactRepo) FindAll() ([]model.ContactMessage, error) {
	var messages []model.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *contactRepo) FindByID(id uuid.UUID) (*model.ContactMessage, error) {
	var message model.ContactMessage
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactRepo) MarkRead(id uuid.UUID) error {
	return r.db.Model(&model.ContactMessage{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now()}).Error
}

func (r *contactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ContactMessage{}, "id = ?", id).Error
}

func (r *contactRepo) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&model.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}
