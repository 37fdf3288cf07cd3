package repositories

import (
	"context"

	"musicostore/internal/models"
)

// StorageRepository defines the interface for warehouse data access.
type StorageRepository interface {
	GetAll(ctx context.Context) ([]models.Storage, error)
	GetByID(ctx context.Context, id uint) (*models.Storage, error)
	Create(ctx context.Context, storage *models.Storage) error
	Update(ctx context.Context, storage *models.Storage) error
	Delete(ctx context.Context, id uint) error
}

// StockRepository defines the interface for stock-level data access.
type StockRepository interface {
	GetAll(ctx context.Context) ([]models.Stock, error)
	GetByID(ctx context.Context, id uint) (*models.Stock, error)
	// FirstByProductID returns any one stock row holding the product, or
	// (nil, nil) when the product is not stocked anywhere.
	FirstByProductID(ctx context.Context, productID uint) (*models.Stock, error)
	Create(ctx context.Context, stock *models.Stock) error
	Update(ctx context.Context, stock *models.Stock) error
	// Decrement lowers a stock row's quantity by qty in a single update.
	Decrement(ctx context.Context, stockID uint, qty int) error
	Delete(ctx context.Context, id uint) error
}
