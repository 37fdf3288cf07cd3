package services

import (
	"context"
	"fmt"
	"strings"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
	"musicostore/internal/repositories"
)

// SearchService answers free-text queries across products, categories and
// manufacturers. Products match when the query appears in both name and
// description; categories and manufacturers match on the name alone.
type SearchService struct {
	productRepo      repositories.ProductRepository
	categoryRepo     repositories.CategoryRepository
	manufacturerRepo repositories.ManufacturerRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	manufacturerRepo repositories.ManufacturerRepository,
) *SearchService {
	return &SearchService{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
	}
}

// Search runs the query against the catalog. Matching is case-insensitive on
// substrings; a blank query is rejected.
func (s *SearchService) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, fmt.Errorf("search query must not be blank: %w", apperrors.ErrValidation)
	}

	products, err := s.productRepo.Filter(ctx, models.ProductFilter{Name: q, Description: q})
	if err != nil {
		return nil, err
	}

	allCategories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(allCategories))
	for _, category := range allCategories {
		if strings.Contains(strings.ToLower(category.Name), q) {
			categories = append(categories, category)
		}
	}

	allManufacturers, err := s.manufacturerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	manufacturers := make([]models.Manufacturer, 0, len(allManufacturers))
	for _, manufacturer := range allManufacturers {
		if strings.Contains(strings.ToLower(manufacturer.Name), q) {
			manufacturers = append(manufacturers, manufacturer)
		}
	}

	return &models.SearchResult{
		Products:      products,
		Categories:    categories,
		Manufacturers: manufacturers,
	}, nil
}
