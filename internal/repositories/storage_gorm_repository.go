package repositories

import (
	"context"
	"errors"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMStorageRepository is a GORM implementation of StorageRepository.
type GORMStorageRepository struct {
	db *gorm.DB
}

// NewGORMStorageRepository creates a new instance of GORMStorageRepository.
func NewGORMStorageRepository(db *gorm.DB) *GORMStorageRepository {
	return &GORMStorageRepository{db: db}
}

// GetAll retrieves all storages.
func (r *GORMStorageRepository) GetAll(ctx context.Context) ([]models.Storage, error) {
	var storages []models.Storage
	if err := r.db.WithContext(ctx).Find(&storages).Error; err != nil {
		return nil, fmt.Errorf("failed to get all storages: %w", err)
	}
	return storages, nil
}

// GetByID retrieves a single storage by its ID.
func (r *GORMStorageRepository) GetByID(ctx context.Context, id uint) (*models.Storage, error) {
	var storage models.Storage
	if err := r.db.WithContext(ctx).First(&storage, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("storage with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get storage by id %d: %w", id, err)
	}
	return &storage, nil
}

// Create creates a new storage.
func (r *GORMStorageRepository) Create(ctx context.Context, storage *models.Storage) error {
	if err := r.db.WithContext(ctx).Create(storage).Error; err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	return nil
}

// Update updates an existing storage.
func (r *GORMStorageRepository) Update(ctx context.Context, storage *models.Storage) error {
	res := r.db.WithContext(ctx).Save(storage)
	if res.Error != nil {
		return fmt.Errorf("failed to update storage: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("storage with id %d: %w", storage.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a storage by its ID.
func (r *GORMStorageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Storage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete storage: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("storage with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{db: db}
}

// GetAll retrieves all stock rows.
func (r *GORMStockRepository) GetAll(ctx context.Context) ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.WithContext(ctx).Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to get all stocks: %w", err)
	}
	return stocks, nil
}

// GetByID retrieves a single stock row by its ID.
func (r *GORMStockRepository) GetByID(ctx context.Context, id uint) (*models.Stock, error) {
	var stock models.Stock
	if err := r.db.WithContext(ctx).First(&stock, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get stock by id %d: %w", id, err)
	}
	return &stock, nil
}

// FirstByProductID returns any one stock row for the product, or (nil, nil)
// when the product is not stocked.
func (r *GORMStockRepository) FirstByProductID(ctx context.Context, productID uint) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.WithContext(ctx).First(&stock, "product_id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stock for product %d: %w", productID, err)
	}
	return &stock, nil
}

// Create creates a new stock row.
func (r *GORMStockRepository) Create(ctx context.Context, stock *models.Stock) error {
	if err := r.db.WithContext(ctx).Create(stock).Error; err != nil {
		return fmt.Errorf("failed to create stock: %w", err)
	}
	return nil
}

// Update updates an existing stock row.
func (r *GORMStockRepository) Update(ctx context.Context, stock *models.Stock) error {
	res := r.db.WithContext(ctx).Save(stock)
	if res.Error != nil {
		return fmt.Errorf("failed to update stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock with id %d: %w", stock.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Decrement lowers the stock quantity by qty in one update statement.
func (r *GORMStockRepository) Decrement(ctx context.Context, stockID uint, qty int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("id = ?", stockID).
		UpdateColumn("current_quantity", gorm.Expr("current_quantity - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to decrement stock %d: %w", stockID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock with id %d: %w", stockID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a stock row by its ID.
func (r *GORMStockRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Stock{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("stock with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
