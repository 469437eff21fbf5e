package service

import (
	"errors"
	"fmt"
	"time"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ContentService interface {
	GetPublishedPosts() ([]model.BlogPost, error)
	GetPostBySlug(slug string) (*model.BlogPost, error)
	GetAllPosts() ([]model.BlogPost, error)
	CreatePost(req *model.BlogPost, userID string) error
	UpdatePost(id uuid.UUID, req *model.BlogPost, userID string) (*model.BlogPost, error)
	DeletePost(id uuid.UUID) error

	GetRunningCampaigns() ([]model.Campaign, error)
	GetAllCampaigns() ([]model.Campaign, error)
	CreateCampaign(req *model.Campaign, userID string) error
	UpdateCampaign(id uuid.UUID, req *model.Campaign, userID string) (*model.Campaign, error)
	DeleteCampaign(id uuid.UUID) error
}

type contentService struct {
	blogRepo     repository.BlogRepository
	campaignRepo repository.CampaignRepository
}

func NewContentService(bRepo repository.BlogRepository, cRepo repository.CampaignRepository) ContentService {
	return &contentService{
		blogRepo:     bRepo,
		campaignRepo: cRepo,
	}
}

func (s *contentService) GetPublishedPosts() ([]model.BlogPost, error) {
	return s.blogRepo.FindPublished()
}

func (s *contentService) GetPostBySlug(postSlug string) (*model.BlogPost, error) {
	return s.blogRepo.FindBySlug(postSlug)
}

func (s *contentService) GetAllPosts() ([]model.BlogPost, error) {
	return s.blogRepo.FindAll()
}

func (s *contentService) CreatePost(req *model.BlogPost, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}
	existing, _ := s.blogRepo.FindBySlug(req.Slug)
	if existing != nil && existing.ID != uuid.Nil {
		return errors.New("post slug already exists")
	}

	if req.Published && req.PublishedAt == nil {
		now := time.Now()
		req.PublishedAt = &now
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.blogRepo.Create(req)
}

func (s *contentService) UpdatePost(id uuid.UUID, req *model.BlogPost, userID string) (*model.BlogPost, error) {
	existing, err := s.blogRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	existing.Excerpt = req.Excerpt
	existing.Body = req.Body
	existing.CoverImage = req.CoverImage

	// Stamp publish time on the unpublished -> published edge only
	if req.Published && !existing.Published {
		now := time.Now()
		existing.PublishedAt = &now
	}
	existing.Published = req.Published
	existing.UpdatedBy = userID

	if err := s.blogRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeletePost(id uuid.UUID) error {
	return s.blogRepo.Delete(id)
}

func (s *contentService) GetRunningCampaigns() ([]model.Campaign, error) {
	return s.campaignRepo.FindRunning(time.Now())
}

func (s *contentService) GetAllCampaigns() ([]model.Campaign, error) {
	return s.campaignRepo.FindAll()
}

func (s *contentService) CreateCampaign(req *model.Campaign, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return errors.New("campaign must end after it starts")
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.campaignRepo.Create(req)
}

func (s *contentService) UpdateCampaign(id uuid.UUID, req *model.Campaign, userID string) (*model.Campaign, error) {
	existing, err := s.campaignRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	existing.BannerImage = req.BannerImage
	existing.DiscountPercent = req.DiscountPercent
	existing.StartsAt = req.StartsAt
	existing.EndsAt = req.EndsAt
	existing.Active = req.Active
	existing.UpdatedBy = userID

	if err := s.campaignRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *contentService) DeleteCampaign(id uuid.UUID) error {
	return s.campaignRepo.Delete(id)
}
