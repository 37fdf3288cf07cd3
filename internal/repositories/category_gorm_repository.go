package repositories

import (
	"context"
	"errors"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories.
func (r *GORMCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by id %d: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category.
func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing category.
func (r *GORMCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	res := r.db.WithContext(ctx).Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with id %d: %w", category.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a category by its ID.
func (r *GORMCategoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GORMManufacturerRepository is a GORM implementation of ManufacturerRepository.
type GORMManufacturerRepository struct {
	db *gorm.DB
}

// NewGORMManufacturerRepository creates a new instance of GORMManufacturerRepository.
func NewGORMManufacturerRepository(db *gorm.DB) *GORMManufacturerRepository {
	return &GORMManufacturerRepository{db: db}
}

// GetAll retrieves all manufacturers.
func (r *GORMManufacturerRepository) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	var manufacturers []models.Manufacturer
	if err := r.db.WithContext(ctx).Find(&manufacturers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all manufacturers: %w", err)
	}
	return manufacturers, nil
}

// GetByID retrieves a single manufacturer by its ID.
func (r *GORMManufacturerRepository) GetByID(ctx context.Context, id uint) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	if err := r.db.WithContext(ctx).First(&manufacturer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("manufacturer with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get manufacturer by id %d: %w", id, err)
	}
	return &manufacturer, nil
}

// Create creates a new manufacturer.
func (r *GORMManufacturerRepository) Create(ctx context.Context, manufacturer *models.Manufacturer) error {
	if err := r.db.WithContext(ctx).Create(manufacturer).Error; err != nil {
		return fmt.Errorf("failed to create manufacturer: %w", err)
	}
	return nil
}

// Update updates an existing manufacturer.
func (r *GORMManufacturerRepository) Update(ctx context.Context, manufacturer *models.Manufacturer) error {
	res := r.db.WithContext(ctx).Save(manufacturer)
	if res.Error != nil {
		return fmt.Errorf("failed to update manufacturer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("manufacturer with id %d: %w", manufacturer.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a manufacturer by its ID.
func (r *GORMManufacturerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Manufacturer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete manufacturer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("manufacturer with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
