package services

import (
	"context"
	"fmt"
	"time"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
	"musicostore/internal/repositories"

	gocache "github.com/patrickmn/go-cache"
)

const (
	productCategoryCacheTTL     = 10 * time.Minute
	productCategoryCacheCleanup = 2 * time.Minute
)

// CategoryAssignmentService manages the many-to-many link between products
// and categories. A product keeps at least one category once it has any, and
// exactly one of its assignments is the primary. Listings are served from a
// TTL memory cache; every mutation drops the product's entry.
type CategoryAssignmentService struct {
	assignmentRepo repositories.ProductCategoryAssignmentRepository
	productRepo    repositories.ProductRepository
	categoryRepo   repositories.CategoryRepository
	cache          *gocache.Cache
}

// NewCategoryAssignmentService creates a new CategoryAssignmentService.
func NewCategoryAssignmentService(
	assignmentRepo repositories.ProductCategoryAssignmentRepository,
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
) *CategoryAssignmentService {
	return &CategoryAssignmentService{
		assignmentRepo: assignmentRepo,
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		cache:          gocache.New(productCategoryCacheTTL, productCategoryCacheCleanup),
	}
}

func productCategoriesCacheKey(productID uint) string {
	return fmt.Sprintf("product_%d_categories", productID)
}

// CategoriesForProduct lists the categories assigned to a product, serving
// repeated reads from cache. Callers receive their own copy of the listing.
func (s *CategoryAssignmentService) CategoriesForProduct(ctx context.Context, productID uint) ([]models.ProductCategoryView, error) {
	key := productCategoriesCacheKey(productID)
	if cached, ok := s.cache.Get(key); ok {
		return append([]models.ProductCategoryView(nil), cached.([]models.ProductCategoryView)...), nil
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProductCategoryView, 0, len(assignments))
	for _, assignment := range assignments {
		category, err := s.categoryRepo.GetByID(ctx, assignment.CategoryID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.ProductCategoryView{
			CategoryID: assignment.CategoryID,
			Name:       category.Name,
			IsPrimary:  assignment.IsPrimary,
		})
	}

	s.cache.SetDefault(key, append([]models.ProductCategoryView(nil), views...))
	return views, nil
}

// Assign attaches a category to a product. The first assignment of a product
// always becomes the primary; assigning a new primary demotes the current
// one.
func (s *CategoryAssignmentService) Assign(ctx context.Context, productID uint, req models.AssignCategoryRequest) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return err
	}

	existing, err := s.assignmentRepo.GetByProductAndCategory(ctx, productID, req.CategoryID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("category %d is already assigned to product %d: %w",
			req.CategoryID, productID, apperrors.ErrInvalidOperation)
	}

	isPrimary := req.IsPrimary
	current, err := s.assignmentRepo.GetForProduct(ctx, productID)
	if err != nil {
		return err
	}
	if len(current) == 0 {
		isPrimary = true
	}

	if isPrimary {
		primary, err := s.assignmentRepo.GetPrimaryForProduct(ctx, productID)
		if err != nil {
			return err
		}
		if primary != nil {
			primary.IsPrimary = false
			if err := s.assignmentRepo.Update(ctx, primary); err != nil {
				return err
			}
		}
	}

	err = s.assignmentRepo.Create(ctx, &models.ProductCategoryAssignment{
		ProductID:  productID,
		CategoryID: req.CategoryID,
		IsPrimary:  isPrimary,
	})
	if err != nil {
		return err
	}

	s.cache.Delete(productCategoriesCacheKey(productID))
	return nil
}

// Remove detaches a category from a product. The last remaining assignment
// and the primary assignment cannot be removed.
func (s *CategoryAssignmentService) Remove(ctx context.Context, productID, categoryID uint) error {
	assignment, err := s.assignmentRepo.GetByProductAndCategory(ctx, productID, categoryID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return fmt.Errorf("category %d is not assigned to product %d: %w",
			categoryID, productID, apperrors.ErrNotFound)
	}

	all, err := s.assignmentRepo.GetForProduct(ctx, productID)
	if err != nil {
		return err
	}
	if len(all) == 1 {
		return fmt.Errorf("product %d must keep at least one category: %w",
			productID, apperrors.ErrInvalidOperation)
	}
	if assignment.IsPrimary {
		return fmt.Errorf("category %d is the primary of product %d, assign another primary first: %w",
			categoryID, productID, apperrors.ErrInvalidOperation)
	}

	if err := s.assignmentRepo.Delete(ctx, assignment.ID); err != nil {
		return err
	}

	s.cache.Delete(productCategoriesCacheKey(productID))
	return nil
}
