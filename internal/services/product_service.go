package services

import (
	"context"
	"fmt"
	"time"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
	"musicostore/internal/repositories"
)

// ProductService handles business logic related to catalog products. Every
// catalog change is appended to the product edit trail; when the caller is an
// authenticated customer, that customer must be an employee.
type ProductService struct {
	repo         repositories.ProductRepository
	editLogRepo  repositories.ProductEditLogRepository
	customerRepo repositories.CustomerRepository
}

// NewProductService creates a new ProductService.
func NewProductService(
	repo repositories.ProductRepository,
	editLogRepo repositories.ProductEditLogRepository,
	customerRepo repositories.CustomerRepository,
) *ProductService {
	return &ProductService{repo: repo, editLogRepo: editLogRepo, customerRepo: customerRepo}
}

// GetAll retrieves all products.
func (s *ProductService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Filter retrieves the products matching the filter criteria.
func (s *ProductService) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.Filter(ctx, filter)
}

// Create creates a new product. The currency defaults to USD when omitted.
func (s *ProductService) Create(ctx context.Context, product *models.Product, editedBy *uint) error {
	if product.CurrencyCode == "" {
		product.CurrencyCode = models.CurrencyUSD
	}
	if !product.CurrencyCode.Valid() {
		return fmt.Errorf("unsupported currency %q: %w", product.CurrencyCode, apperrors.ErrValidation)
	}
	if err := s.ensureEditorIsEmployee(ctx, editedBy); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	return s.logEdit(ctx, product.ID, editedBy)
}

// Update updates an existing product. Catalog price changes never touch the
// frozen prices of existing order items.
func (s *ProductService) Update(ctx context.Context, product *models.Product, editedBy *uint) error {
	if product.CurrencyCode != "" && !product.CurrencyCode.Valid() {
		return fmt.Errorf("unsupported currency %q: %w", product.CurrencyCode, apperrors.ErrValidation)
	}
	if err := s.ensureEditorIsEmployee(ctx, editedBy); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	return s.logEdit(ctx, product.ID, editedBy)
}

// Delete deletes a product by its ID.
func (s *ProductService) Delete(ctx context.Context, id uint, editedBy *uint) error {
	if err := s.ensureEditorIsEmployee(ctx, editedBy); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.logEdit(ctx, id, editedBy)
}

// EditLog retrieves the edit trail of a product, oldest first.
func (s *ProductService) EditLog(ctx context.Context, productID uint) ([]models.ProductEditLog, error) {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.editLogRepo.GetByProductID(ctx, productID)
}

// ensureEditorIsEmployee verifies that an authenticated editor exists and is
// an employee. A nil editor is an unauthenticated caller and passes; the
// surrounding transport decides whether those are allowed in at all.
func (s *ProductService) ensureEditorIsEmployee(ctx context.Context, editedBy *uint) error {
	if editedBy == nil {
		return nil
	}
	customer, err := s.customerRepo.GetByID(ctx, *editedBy)
	if err != nil {
		return err
	}
	if !customer.IsEmployee {
		return fmt.Errorf("customer %d may not modify products: %w", *editedBy, apperrors.ErrInvalidOperation)
	}
	return nil
}

func (s *ProductService) logEdit(ctx context.Context, productID uint, editedBy *uint) error {
	return s.editLogRepo.Append(ctx, &models.ProductEditLog{
		ProductID:  productID,
		CustomerID: editedBy,
		EditTime:   time.Now().UTC(),
	})
}
