package service

import (
	"fmt"
	"strings"
	"time"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/pkg/validator"

	"github.com/google/uuid"
)

type EngageService interface {
	Subscribe(email string) (*model.NewsletterSubscriber, error)
	Unsubscribe(email string) error
	GetSubscribers() ([]model.NewsletterSubscriber, error)

	SubmitContactMessage(req *model.ContactMessage) error
	GetContactMessages() ([]model.ContactMessage, error)
	MarkMessageRead(id uuid.UUID) error
	DeleteContactMessage(id uuid.UUID) error
}

type engageService struct {
	newsletterRepo repository.NewsletterRepository
	contactRepo    repository.ContactRepository
}

func NewEngageService(nRepo repository.NewsletterRepository, cRepo repository.ContactRepository) EngageService {
	return &engageService{
		newsletterRepo: nRepo,
		contactRepo:    cRepo,
	}
}

// Subscribe is idempotent on email: re-subscribing an existing address just
// clears the unsubscribed flag.
func (s *engageService) Subscribe(email string) (*model.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	subscriber := &model.NewsletterSubscriber{Email: email}
	if errs := validator.ValidateStruct(subscriber); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.newsletterRepo.FindByEmail(email)
	if err == nil {
		if existing.Unsubscribed {
			existing.Unsubscribed = false
			existing.UnsubscribedAt = nil
			if err := s.newsletterRepo.Update(existing); err != nil {
				return nil, err
			}
		}
		return existing, nil
	}

	if err := s.newsletterRepo.Create(subscriber); err != nil {
		return nil, err
	}
	return subscriber, nil
}

func (s *engageService) Unsubscribe(email string) error {
	subscriber, err := s.newsletterRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if subscriber.Unsubscribed {
		return nil
	}
	now := time.Now()
	subscriber.Unsubscribed = true
	subscriber.UnsubscribedAt = &now
	return s.newsletterRepo.Update(subscriber)
}

func (s *engageService) GetSubscribers() ([]model.NewsletterSubscriber, error) {
	return s.newsletterRepo.FindActive()
}

func (s *engageService) SubmitContactMessage(req *model.ContactMessage) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	return s.contactRepo.Create(req)
}

func (s *engageService) GetContactMessages() ([]model.ContactMessage, error) {
	return s.contactRepo.FindAll()
}

func (s *engageService) MarkMessageRead(id uuid.UUID) error {
	if _, err := s.contactRepo.FindByID(id); err != nil {
		return err
	}
	return s.contactRepo.MarkRead(id)
}

func (s *engageService) DeleteContactMessage(id uuid.UUID) error {
	return s.contactRepo.Delete(id)
}
