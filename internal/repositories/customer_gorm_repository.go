package repositories

import (
	"context"
	"errors"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMCustomerRepository is a GORM implementation of CustomerRepository.
type GORMCustomerRepository struct {
	db *gorm.DB
}

// NewGORMCustomerRepository creates a new instance of GORMCustomerRepository.
func NewGORMCustomerRepository(db *gorm.DB) *GORMCustomerRepository {
	return &GORMCustomerRepository{db: db}
}

// GetAll retrieves all customers.
func (r *GORMCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all customers: %w", err)
	}
	return customers, nil
}

// GetByID retrieves a single customer by their ID.
func (r *GORMCustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get customer by id %d: %w", id, err)
	}
	return &customer, nil
}

// Create creates a new customer.
func (r *GORMCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update updates an existing customer.
func (r *GORMCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	res := r.db.WithContext(ctx).Save(customer)
	if res.Error != nil {
		return fmt.Errorf("failed to update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with id %d: %w", customer.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a customer by their ID.
func (r *GORMCustomerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GORMAddressRepository is a GORM implementation of AddressRepository.
type GORMAddressRepository struct {
	db *gorm.DB
}

// NewGORMAddressRepository creates a new instance of GORMAddressRepository.
func NewGORMAddressRepository(db *gorm.DB) *GORMAddressRepository {
	return &GORMAddressRepository{db: db}
}

// GetAll retrieves all addresses.
func (r *GORMAddressRepository) GetAll(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.WithContext(ctx).Find(&addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all addresses: %w", err)
	}
	return addresses, nil
}

// GetByID retrieves a single address by its ID.
func (r *GORMAddressRepository) GetByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("address with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get address by id %d: %w", id, err)
	}
	return &address, nil
}

// Create creates a new address.
func (r *GORMAddressRepository) Create(ctx context.Context, address *models.Address) error {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

// Update updates an existing address.
func (r *GORMAddressRepository) Update(ctx context.Context, address *models.Address) error {
	res := r.db.WithContext(ctx).Save(address)
	if res.Error != nil {
		return fmt.Errorf("failed to update address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with id %d: %w", address.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes an address by its ID.
func (r *GORMAddressRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Address{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("address with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GORMCustomerAddressRepository is a GORM implementation of CustomerAddressRepository.
type GORMCustomerAddressRepository struct {
	db *gorm.DB
}

// NewGORMCustomerAddressRepository creates a new instance of GORMCustomerAddressRepository.
func NewGORMCustomerAddressRepository(db *gorm.DB) *GORMCustomerAddressRepository {
	return &GORMCustomerAddressRepository{db: db}
}

// GetByCustomerID retrieves every address association of one customer.
func (r *GORMCustomerAddressRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.CustomerAddress, error) {
	var assocs []models.CustomerAddress
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&assocs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses for customer %d: %w", customerID, err)
	}
	return assocs, nil
}

// GetMainForCustomer retrieves the customer's main address association, or
// (nil, nil) when no main address is designated.
func (r *GORMCustomerAddressRepository) GetMainForCustomer(ctx context.Context, customerID uint) (*models.CustomerAddress, error) {
	var assoc models.CustomerAddress
	err := r.db.WithContext(ctx).
		First(&assoc, "customer_id = ? AND is_main = ?", customerID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get main address for customer %d: %w", customerID, err)
	}
	return &assoc, nil
}

// GetByCustomerAndAddress retrieves the association between a customer and an
// address, or (nil, nil) when the address is not assigned to that customer.
func (r *GORMCustomerAddressRepository) GetByCustomerAndAddress(ctx context.Context, customerID, addressID uint) (*models.CustomerAddress, error) {
	var assoc models.CustomerAddress
	err := r.db.WithContext(ctx).
		First(&assoc, "customer_id = ? AND address_id = ?", customerID, addressID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get address %d for customer %d: %w", addressID, customerID, err)
	}
	return &assoc, nil
}

// Create creates a new customer-address association.
func (r *GORMCustomerAddressRepository) Create(ctx context.Context, assoc *models.CustomerAddress) error {
	if err := r.db.WithContext(ctx).Create(assoc).Error; err != nil {
		return fmt.Errorf("failed to create customer address: %w", err)
	}
	return nil
}

// Update updates an existing customer-address association.
func (r *GORMCustomerAddressRepository) Update(ctx context.Context, assoc *models.CustomerAddress) error {
	res := r.db.WithContext(ctx).Save(assoc)
	if res.Error != nil {
		return fmt.Errorf("failed to update customer address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer address with id %d: %w", assoc.ID, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a customer-address association by its ID.
func (r *GORMCustomerAddressRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.CustomerAddress{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete customer address: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("customer address with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
