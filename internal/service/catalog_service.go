package service

import (
	"errors"
	"fmt"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var (
	ErrCategoryHasChildren = errors.New("category has subcategories and cannot be deleted")
	ErrCategoryHasProducts = errors.New("category has products and cannot be deleted")
)

type CatalogService interface {
	GetCategoryTree() ([]*model.CategoryNode, error)
	GetCategoriesByParent(parentID *uuid.UUID) ([]model.CategoryWithCount, error)
	GetCategoryTotalCount(id uuid.UUID) (int64, error)
	GetCategoryBySlug(slug string) (*model.Category, error)
	CreateCategory(req *model.Category, userID string) error
	UpdateCategory(id uuid.UUID, req *model.Category, userID string) (*model.Category, error)
	DeleteCategory(id uuid.UUID) error

	GetProducts() ([]model.Product, error)
	GetFeaturedProducts() ([]model.Product, error)
	GetProductBySlug(slug string) (*model.Product, error)
	GetProductsByCategorySlug(categorySlug string) ([]model.Product, error)
	CreateProduct(req *model.Product, userID string) error
	UpdateProduct(id uuid.UUID, req *model.Product, userID string) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		categoryRepo: cRepo,
		productRepo:  pRepo,
	}
}

// GetCategoryTree builds the full category forest from one flat fetch plus
// one aggregate count query. Linking goes through an id-keyed node map, never
// through embedded parent pointers. Categories whose parent id does not
// resolve are dropped from the forest. Root nodes carry their full subtree
// product total; nested nodes keep their direct counts.
func (s *catalogService) GetCategoryTree() ([]*model.CategoryNode, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.categoryRepo.ProductCounts()
	if err != nil {
		return nil, err
	}

	nodes := make(map[uuid.UUID]*model.CategoryNode, len(categories))
	for i := range categories {
		c := categories[i]
		nodes[c.ID] = &model.CategoryNode{
			Category:     c,
			ProductCount: counts[c.ID],
			Children:     []*model.CategoryNode{},
		}
	}

	// Single linking pass. FindAll is sorted (display_order, name), so
	// children land in display order at every level.
	roots := []*model.CategoryNode{}
	for i := range categories {
		c := categories[i]
		if c.ParentID == nil {
			roots = append(roots, nodes[c.ID])
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[c.ID])
		}
	}

	for _, root := range roots {
		root.ProductCount = subtreeTotal(root)
	}
	return roots, nil
}

func subtreeTotal(node *model.CategoryNode) int64 {
	total := node.ProductCount
	for _, child := range node.Children {
		total += subtreeTotal(child)
	}
	return total
}

// GetCategoriesByParent returns one level of the tree. Root-level listings
// carry full subtree totals (computed by the per-level re-query variant);
// deeper levels carry direct counts only.
func (s *catalogService) GetCategoriesByParent(parentID *uuid.UUID) ([]model.CategoryWithCount, error) {
	categories, err := s.categoryRepo.FindByParent(parentID)
	if err != nil {
		return nil, err
	}
	counts, err := s.categoryRepo.ProductCounts()
	if err != nil {
		return nil, err
	}

	result := make([]model.CategoryWithCount, 0, len(categories))
	for i := range categories {
		c := categories[i]
		count := counts[c.ID]
		if parentID == nil {
			if count, err = s.totalCount(c.ID, counts); err != nil {
				return nil, err
			}
		}
		result = append(result, model.CategoryWithCount{Category: c, ProductCount: count})
	}
	return result, nil
}

// GetCategoryTotalCount returns direct + descendant product counts for one
// category. Recurses through FindByParent at each level, unbounded depth, no
// cycle guard (the parent graph is assumed acyclic).
func (s *catalogService) GetCategoryTotalCount(id uuid.UUID) (int64, error) {
	counts, err := s.categoryRepo.ProductCounts()
	if err != nil {
		return 0, err
	}
	return s.totalCount(id, counts)
}

func (s *catalogService) totalCount(id uuid.UUID, counts map[uuid.UUID]int64) (int64, error) {
	total := counts[id]
	children, err := s.categoryRepo.FindByParent(&id)
	if err != nil {
		return 0, err
	}
	for _, child := range children {
		childTotal, err := s.totalCount(child.ID, counts)
		if err != nil {
			return 0, err
		}
		total += childTotal
	}
	return total, nil
}

func (s *catalogService) GetCategoryBySlug(categorySlug string) (*model.Category, error) {
	return s.categoryRepo.FindBySlug(categorySlug)
}

func (s *catalogService) CreateCategory(req *model.Category, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}
	existing, _ := s.categoryRepo.FindBySlug(req.Slug)
	if existing != nil && existing.ID != uuid.Nil {
		return errors.New("category slug already exists")
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.categoryRepo.Create(req)
}

func (s *catalogService) UpdateCategory(id uuid.UUID, req *model.Category, userID string) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	existing.ParentID = req.ParentID
	existing.Icon = req.Icon
	existing.Order = req.Order
	existing.UpdatedBy = userID

	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCategory refuses to delete a category that still has subcategories
// or products. The check lives here, not in database constraints.
func (s *catalogService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return err
	}

	children, err := s.categoryRepo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrCategoryHasChildren
	}

	products, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return ErrCategoryHasProducts
	}

	return s.categoryRepo.Delete(id)
}

func (s *catalogService) GetProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetFeaturedProducts() ([]model.Product, error) {
	return s.productRepo.FindFeatured()
}

func (s *catalogService) GetProductBySlug(productSlug string) (*model.Product, error) {
	return s.productRepo.FindBySlug(productSlug)
}

// GetProductsByCategorySlug lists products of a category and all of its
// descendants.
func (s *catalogService) GetProductsByCategorySlug(categorySlug string) ([]model.Product, error) {
	category, err := s.categoryRepo.FindBySlug(categorySlug)
	if err != nil {
		return nil, err
	}
	ids, err := s.descendantIDs(category.ID)
	if err != nil {
		return nil, err
	}
	return s.productRepo.FindByCategoryIDs(ids)
}

func (s *catalogService) descendantIDs(id uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{id}
	children, err := s.categoryRepo.FindByParent(&id)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		childIDs, err := s.descendantIDs(child.ID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, childIDs...)
	}
	return ids, nil
}

func (s *catalogService) CreateProduct(req *model.Product, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return errors.New("category not found")
	}

	if req.Slug == "" {
		req.Slug = slug.Make(req.Title)
	}
	existing, _ := s.productRepo.FindBySlug(req.Slug)
	if existing != nil && existing.ID != uuid.Nil {
		return errors.New("product slug already exists")
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID
	return s.productRepo.Create(req)
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, userID string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	existing.Description = req.Description
	existing.Price = req.Price
	existing.OriginalPrice = req.OriginalPrice
	existing.CategoryID = req.CategoryID
	existing.InStock = req.InStock
	existing.Featured = req.Featured
	existing.MetaTitle = req.MetaTitle
	existing.MetaDescription = req.MetaDescription
	existing.UpdatedBy = userID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	return s.productRepo.Delete(id)
}
