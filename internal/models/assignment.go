package models

import "time"

// ProductCategoryAssignment links a product to one of its categories. A
// product can belong to several categories; exactly one assignment per
// product carries the primary flag.
type ProductCategoryAssignment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"uniqueIndex:idx_product_category" validate:"required"`
	CategoryID uint      `json:"category_id" gorm:"uniqueIndex:idx_product_category" validate:"required"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AssignCategoryRequest is the payload for attaching a category to a product.
type AssignCategoryRequest struct {
	CategoryID uint `json:"category_id" validate:"required"`
	IsPrimary  bool `json:"is_primary"`
}

// ProductCategoryView is one row of a product's category listing.
type ProductCategoryView struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	IsPrimary  bool   `json:"is_primary"`
}
