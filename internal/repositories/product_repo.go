package repositories

import (
	"context"

	"musicostore/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	// Filter retrieves the products matching every set criterion of the
	// filter. Name and description match case-insensitively on substrings.
	Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

// ProductEditLogRepository defines the interface for the append-only product
// edit trail.
type ProductEditLogRepository interface {
	Append(ctx context.Context, entry *models.ProductEditLog) error
	GetByProductID(ctx context.Context, productID uint) ([]models.ProductEditLog, error)
}
