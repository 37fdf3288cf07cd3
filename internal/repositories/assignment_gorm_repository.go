package repositories

import (
	"context"
	"errors"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMProductCategoryAssignmentRepository is a GORM implementation of
// ProductCategoryAssignmentRepository.
type GORMProductCategoryAssignmentRepository struct {
	db *gorm.DB
}

// NewGORMProductCategoryAssignmentRepository creates a new instance of
// GORMProductCategoryAssignmentRepository.
func NewGORMProductCategoryAssignmentRepository(db *gorm.DB) *GORMProductCategoryAssignmentRepository {
	return &GORMProductCategoryAssignmentRepository{db: db}
}

// GetForProduct retrieves all category assignments of a product.
func (r *GORMProductCategoryAssignmentRepository) GetForProduct(ctx context.Context, productID uint) ([]models.ProductCategoryAssignment, error) {
	var assignments []models.ProductCategoryAssignment
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category assignments for product %d: %w", productID, err)
	}
	return assignments, nil
}

// GetByProductAndCategory retrieves the assignment between the given product
// and category, or (nil, nil) when the category is not assigned.
func (r *GORMProductCategoryAssignmentRepository) GetByProductAndCategory(ctx context.Context, productID, categoryID uint) (*models.ProductCategoryAssignment, error) {
	var assignment models.ProductCategoryAssignment
	err := r.db.WithContext(ctx).
		First(&assignment, "product_id = ? AND category_id = ?", productID, categoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment of category %d to product %d: %w", categoryID, productID, err)
	}
	return &assignment, nil
}

// GetPrimaryForProduct retrieves the product's primary assignment, or
// (nil, nil) when the product has none.
func (r *GORMProductCategoryAssignmentRepository) GetPrimaryForProduct(ctx context.Context, productID uint) (*models.ProductCategoryAssignment, error) {
	var assignment models.ProductCategoryAssignment
	err := r.db.WithContext(ctx).
		First(&assignment, "product_id = ? AND is_primary = ?", productID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get primary category for product %d: %w", productID, err)
	}
	return &assignment, nil
}

// Create creates a new category assignment in the database.
func (r *GORMProductCategoryAssignmentRepository) Create(ctx context.Context, assignment *models.ProductCategoryAssignment) error {
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create category assignment: %w", err)
	}
	return nil
}

// Update updates an existing category assignment in the database.
func (r *GORMProductCategoryAssignmentRepository) Update(ctx context.Context, assignment *models.ProductCategoryAssignment) error {
	res := r.db.WithContext(ctx).Model(assignment).Update("is_primary", assignment.IsPrimary)
	if res.Error != nil {
		return fmt.Errorf("failed to update category assignment: %w", res.Error)
	}
	return nil
}

// Delete deletes a category assignment by its ID from the database.
func (r *GORMProductCategoryAssignmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.ProductCategoryAssignment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category assignment with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
