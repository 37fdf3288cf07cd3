package repositories

import (
	"context"

	"musicostore/internal/models"
)

// OrderRepository defines the interface for order data access. Reads return
// the full aggregate with items and status log loaded.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByCustomerID(ctx context.Context, customerID uint) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
}

// OrderStateRepository reads the fixed state catalog.
type OrderStateRepository interface {
	GetAll(ctx context.Context) ([]models.OrderState, error)
	GetByID(ctx context.Context, id uint) (*models.OrderState, error)
	GetByName(ctx context.Context, name string) (*models.OrderState, error)
}

// OrderStatusLogRepository appends to the per-order status log. The log is
// append-only; there is deliberately no update or delete.
type OrderStatusLogRepository interface {
	Append(ctx context.Context, entry *models.OrderStatusLogEntry) error
}

// OrderStores bundles the repositories touched by the multi-step create-order
// sequence so a unit of work can rebind them to one transaction.
type OrderStores struct {
	Orders     OrderRepository
	Stocks     StockRepository
	StatusLogs OrderStatusLogRepository
}

// UnitOfWork runs fn against transaction-bound stores: either every write in
// fn commits or none does.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(s OrderStores) error) error
}
