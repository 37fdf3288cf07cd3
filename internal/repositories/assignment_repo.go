package repositories

import (
	"context"

	"musicostore/internal/models"
)

// ProductCategoryAssignmentRepository defines the interface for the
// product-category link table.
type ProductCategoryAssignmentRepository interface {
	GetForProduct(ctx context.Context, productID uint) ([]models.ProductCategoryAssignment, error)
	// GetByProductAndCategory returns the assignment between the given
	// product and category, or (nil, nil) when the category is not assigned.
	GetByProductAndCategory(ctx context.Context, productID, categoryID uint) (*models.ProductCategoryAssignment, error)
	// GetPrimaryForProduct returns the product's primary assignment, or
	// (nil, nil) when the product has no categories yet.
	GetPrimaryForProduct(ctx context.Context, productID uint) (*models.ProductCategoryAssignment, error)
	Create(ctx context.Context, assignment *models.ProductCategoryAssignment) error
	Update(ctx context.Context, assignment *models.ProductCategoryAssignment) error
	Delete(ctx context.Context, id uint) error
}
