package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// Filter retrieves the products matching every set criterion of the filter.
func (r *GORMProductRepository) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Description != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Description)+"%")
	}
	if filter.MaxPrice != nil {
		query = query.Where("current_price <= ?", *filter.MaxPrice)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ManufacturerID != nil {
		query = query.Where("manufacturer_id = ?", *filter.ManufacturerID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound for a missing row, so we
		// check RowsAffected.
		return fmt.Errorf("product with id %d: %w", product.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GORMProductEditLogRepository is a GORM implementation of
// ProductEditLogRepository.
type GORMProductEditLogRepository struct {
	db *gorm.DB
}

// NewGORMProductEditLogRepository creates a new instance of
// GORMProductEditLogRepository.
func NewGORMProductEditLogRepository(db *gorm.DB) *GORMProductEditLogRepository {
	return &GORMProductEditLogRepository{db: db}
}

// Append records a new edit trail entry.
func (r *GORMProductEditLogRepository) Append(ctx context.Context, entry *models.ProductEditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append product edit log entry: %w", err)
	}
	return nil
}

// GetByProductID retrieves the edit trail for a product, oldest first.
func (r *GORMProductEditLogRepository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductEditLog, error) {
	var entries []models.ProductEditLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("edit_time asc").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get edit log for product %d: %w", productID, err)
	}
	return entries, nil
}
