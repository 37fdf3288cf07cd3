package repositories

import (
	"context"

	"musicostore/internal/models"
)

// CustomerRepository defines the interface for customer data access.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uint) error
}

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	GetAll(ctx context.Context) ([]models.Address, error)
	GetByID(ctx context.Context, id uint) (*models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uint) error
}

// CustomerAddressRepository manages the customer-address association,
// including main-address resolution for order creation.
type CustomerAddressRepository interface {
	GetByCustomerID(ctx context.Context, customerID uint) ([]models.CustomerAddress, error)
	// GetMainForCustomer returns the customer's designated main address
	// association, or (nil, nil) when the customer has none.
	GetMainForCustomer(ctx context.Context, customerID uint) (*models.CustomerAddress, error)
	// GetByCustomerAndAddress returns the association between the given
	// customer and address, or (nil, nil) when the address is not assigned to
	// that customer.
	GetByCustomerAndAddress(ctx context.Context, customerID, addressID uint) (*models.CustomerAddress, error)
	Create(ctx context.Context, assoc *models.CustomerAddress) error
	Update(ctx context.Context, assoc *models.CustomerAddress) error
	Delete(ctx context.Context, id uint) error
}
