package repositories

import (
	"context"
	"errors"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// GetAll retrieves all orders with their items and status logs.
func (r *GORMOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusLog").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order aggregate by its ID.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusLog").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by id %d: %w", id, err)
	}
	return &order, nil
}

// GetByCustomerID retrieves all orders placed by one customer.
func (r *GORMOrderRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("StatusLog").
		Where("customer_id = ?", customerID).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for customer %d: %w", customerID, err)
	}
	return orders, nil
}

// Create persists the order together with any nested items and status log
// entries in one statement batch.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Delete removes an order; items and status log cascade with it.
func (r *GORMOrderRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Select("Items", "StatusLog").Delete(&models.Order{ID: id})
	if res.Error != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// Exists reports whether an order with the given ID is persisted.
func (r *GORMOrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check order %d existence: %w", id, err)
	}
	return count > 0, nil
}

// GORMOrderStateRepository is a GORM implementation of OrderStateRepository.
type GORMOrderStateRepository struct {
	db *gorm.DB
}

// NewGORMOrderStateRepository creates a new instance of GORMOrderStateRepository.
func NewGORMOrderStateRepository(db *gorm.DB) *GORMOrderStateRepository {
	return &GORMOrderStateRepository{db: db}
}

// GetAll retrieves the state catalog ordered by identity.
func (r *GORMOrderStateRepository) GetAll(ctx context.Context) ([]models.OrderState, error) {
	var states []models.OrderState
	if err := r.db.WithContext(ctx).Order("id").Find(&states).Error; err != nil {
		return nil, fmt.Errorf("failed to get order states: %w", err)
	}
	return states, nil
}

// GetByID retrieves one state by its ID.
func (r *GORMOrderStateRepository) GetByID(ctx context.Context, id uint) (*models.OrderState, error) {
	var state models.OrderState
	if err := r.db.WithContext(ctx).First(&state, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order state with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order state by id %d: %w", id, err)
	}
	return &state, nil
}

// GetByName retrieves one state by its name.
func (r *GORMOrderStateRepository) GetByName(ctx context.Context, name string) (*models.OrderState, error) {
	var state models.OrderState
	if err := r.db.WithContext(ctx).First(&state, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order state %q: %w", name, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order state %q: %w", name, err)
	}
	return &state, nil
}

// GORMOrderStatusLogRepository is a GORM implementation of OrderStatusLogRepository.
type GORMOrderStatusLogRepository struct {
	db *gorm.DB
}

// NewGORMOrderStatusLogRepository creates a new instance of GORMOrderStatusLogRepository.
func NewGORMOrderStatusLogRepository(db *gorm.DB) *GORMOrderStatusLogRepository {
	return &GORMOrderStatusLogRepository{db: db}
}

// Append writes one status log entry.
func (r *GORMOrderStatusLogRepository) Append(ctx context.Context, entry *models.OrderStatusLogEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append status log entry: %w", err)
	}
	return nil
}

// GORMUnitOfWork runs a function against transaction-bound repositories.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// Do opens a transaction, rebinds the order stores to it and runs fn. A
// non-nil error from fn rolls everything back.
func (u *GORMUnitOfWork) Do(ctx context.Context, fn func(s OrderStores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(OrderStores{
			Orders:     NewGORMOrderRepository(tx),
			Stocks:     NewGORMStockRepository(tx),
			StatusLogs: NewGORMOrderStatusLogRepository(tx),
		})
	})
}
