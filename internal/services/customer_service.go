package services

import (
	"context"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
	"musicostore/internal/repositories"
)

// CustomerService handles business logic for customers, addresses and the
// association between them, including main-address designation.
type CustomerService struct {
	customerRepo repositories.CustomerRepository
	addressRepo  repositories.AddressRepository
	custAddrRepo repositories.CustomerAddressRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	addressRepo repositories.AddressRepository,
	custAddrRepo repositories.CustomerAddressRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
		custAddrRepo: custAddrRepo,
	}
}

func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	return s.customerRepo.GetAll(ctx)
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *CustomerService) Create(ctx context.Context, customer *models.Customer) error {
	return s.customerRepo.Create(ctx, customer)
}

func (s *CustomerService) Update(ctx context.Context, customer *models.Customer) error {
	return s.customerRepo.Update(ctx, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.customerRepo.Delete(ctx, id)
}

// Addresses

func (s *CustomerService) GetAllAddresses(ctx context.Context) ([]models.Address, error) {
	return s.addressRepo.GetAll(ctx)
}

func (s *CustomerService) GetAddressByID(ctx context.Context, id uint) (*models.Address, error) {
	return s.addressRepo.GetByID(ctx, id)
}

func (s *CustomerService) CreateAddress(ctx context.Context, address *models.Address) error {
	return s.addressRepo.Create(ctx, address)
}

func (s *CustomerService) UpdateAddress(ctx context.Context, address *models.Address) error {
	return s.addressRepo.Update(ctx, address)
}

func (s *CustomerService) DeleteAddress(ctx context.Context, id uint) error {
	return s.addressRepo.Delete(ctx, id)
}

// GetCustomerAddresses lists all address associations of one customer.
func (s *CustomerService) GetCustomerAddresses(ctx context.Context, customerID uint) ([]models.CustomerAddress, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.custAddrRepo.GetByCustomerID(ctx, customerID)
}

// AssignAddress links an address to a customer. When main is set, any prior
// main designation of that customer is cleared first so at most one remains.
func (s *CustomerService) AssignAddress(ctx context.Context, customerID, addressID uint, main bool) (*models.CustomerAddress, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.addressRepo.GetByID(ctx, addressID); err != nil {
		return nil, err
	}

	existing, err := s.custAddrRepo.GetByCustomerAndAddress(ctx, customerID, addressID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("customer %d already has address %d assigned: %w",
			customerID, addressID, apperrors.ErrInvalidOperation)
	}

	if main {
		if err := s.clearMainAddress(ctx, customerID); err != nil {
			return nil, err
		}
	}

	assoc := &models.CustomerAddress{
		CustomerID: customerID,
		AddressID:  addressID,
		IsMain:     main,
	}
	if err := s.custAddrRepo.Create(ctx, assoc); err != nil {
		return nil, err
	}
	return assoc, nil
}

// SetMainAddress designates one of the customer's assigned addresses as main.
func (s *CustomerService) SetMainAddress(ctx context.Context, customerID, addressID uint) error {
	assoc, err := s.custAddrRepo.GetByCustomerAndAddress(ctx, customerID, addressID)
	if err != nil {
		return err
	}
	if assoc == nil {
		return fmt.Errorf("customer %d does not have address %d assigned: %w",
			customerID, addressID, apperrors.ErrInvalidOperation)
	}

	if err := s.clearMainAddress(ctx, customerID); err != nil {
		return err
	}

	assoc.IsMain = true
	return s.custAddrRepo.Update(ctx, assoc)
}

func (s *CustomerService) clearMainAddress(ctx context.Context, customerID uint) error {
	current, err := s.custAddrRepo.GetMainForCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	current.IsMain = false
	return s.custAddrRepo.Update(ctx, current)
}
