package services_test

import (
	"context"

	"musicostore/internal/models"
	"musicostore/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockOrderStateRepository is a mock implementation of repositories.OrderStateRepository
type MockOrderStateRepository struct {
	mock.Mock
}

func (m *MockOrderStateRepository) GetAll(ctx context.Context) ([]models.OrderState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderState), args.Error(1)
}

func (m *MockOrderStateRepository) GetByID(ctx context.Context, id uint) (*models.OrderState, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderState), args.Error(1)
}

func (m *MockOrderStateRepository) GetByName(ctx context.Context, name string) (*models.OrderState, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderState), args.Error(1)
}

// MockOrderStatusLogRepository is a mock implementation of repositories.OrderStatusLogRepository
type MockOrderStatusLogRepository struct {
	mock.Mock
}

func (m *MockOrderStatusLogRepository) Append(ctx context.Context, entry *models.OrderStatusLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockStockRepository is a mock implementation of repositories.StockRepository
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) GetAll(ctx context.Context) ([]models.Stock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stock), args.Error(1)
}

func (m *MockStockRepository) GetByID(ctx context.Context, id uint) (*models.Stock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockRepository) FirstByProductID(ctx context.Context, productID uint) (*models.Stock, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stock), args.Error(1)
}

func (m *MockStockRepository) Create(ctx context.Context, stock *models.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) Update(ctx context.Context, stock *models.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) Decrement(ctx context.Context, stockID uint, qty int) error {
	args := m.Called(ctx, stockID, qty)
	return args.Error(0)
}

func (m *MockStockRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerAddressRepository is a mock implementation of repositories.CustomerAddressRepository
type MockCustomerAddressRepository struct {
	mock.Mock
}

func (m *MockCustomerAddressRepository) GetByCustomerID(ctx context.Context, customerID uint) ([]models.CustomerAddress, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomerAddress), args.Error(1)
}

func (m *MockCustomerAddressRepository) GetMainForCustomer(ctx context.Context, customerID uint) (*models.CustomerAddress, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerAddress), args.Error(1)
}

func (m *MockCustomerAddressRepository) GetByCustomerAndAddress(ctx context.Context, customerID, addressID uint) (*models.CustomerAddress, error) {
	args := m.Called(ctx, customerID, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerAddress), args.Error(1)
}

func (m *MockCustomerAddressRepository) Create(ctx context.Context, assoc *models.CustomerAddress) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}

func (m *MockCustomerAddressRepository) Update(ctx context.Context, assoc *models.CustomerAddress) error {
	args := m.Called(ctx, assoc)
	return args.Error(0)
}

func (m *MockCustomerAddressRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGiftCardRepository is a mock implementation of repositories.GiftCardRepository
type MockGiftCardRepository struct {
	mock.Mock
}

func (m *MockGiftCardRepository) GetAll(ctx context.Context) ([]models.GiftCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GiftCard), args.Error(1)
}

func (m *MockGiftCardRepository) GetByID(ctx context.Context, id uint) (*models.GiftCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiftCard), args.Error(1)
}

func (m *MockGiftCardRepository) Create(ctx context.Context, card *models.GiftCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockGiftCardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCouponRepository is a mock implementation of repositories.CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) GetAll(ctx context.Context) ([]models.GiftCardCoupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GiftCardCoupon), args.Error(1)
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*models.GiftCardCoupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiftCardCoupon), args.Error(1)
}

func (m *MockCouponRepository) GetByOrderID(ctx context.Context, orderID uint) (*models.GiftCardCoupon, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiftCardCoupon), args.Error(1)
}

func (m *MockCouponRepository) Create(ctx context.Context, coupon *models.GiftCardCoupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) BindToOrder(ctx context.Context, couponID, orderID uint) error {
	args := m.Called(ctx, couponID, orderID)
	return args.Error(0)
}

func (m *MockCouponRepository) Release(ctx context.Context, couponID uint) error {
	args := m.Called(ctx, couponID)
	return args.Error(0)
}

// fakeUnitOfWork runs the function directly against the given stores, without
// a real transaction.
type fakeUnitOfWork struct {
	stores repositories.OrderStores
}

func (u *fakeUnitOfWork) Do(ctx context.Context, fn func(s repositories.OrderStores) error) error {
	return fn(u.stores)
}

// MockEventPublisher is a mock implementation of services.OrderEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderCreated(payload map[string]interface{}) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishOrderStateChanged(payload map[string]interface{}) error {
	args := m.Called(payload)
	return args.Error(0)
}

// MockProductEditLogRepository is a mock implementation of repositories.ProductEditLogRepository
type MockProductEditLogRepository struct {
	mock.Mock
}

func (m *MockProductEditLogRepository) Append(ctx context.Context, entry *models.ProductEditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProductEditLogRepository) GetByProductID(ctx context.Context, productID uint) ([]models.ProductEditLog, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductEditLog), args.Error(1)
}

// MockCustomerRepository is a mock implementation of repositories.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockManufacturerRepository is a mock implementation of repositories.ManufacturerRepository
type MockManufacturerRepository struct {
	mock.Mock
}

func (m *MockManufacturerRepository) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) GetByID(ctx context.Context, id uint) (*models.Manufacturer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockManufacturerRepository) Create(ctx context.Context, manufacturer *models.Manufacturer) error {
	args := m.Called(ctx, manufacturer)
	return args.Error(0)
}

func (m *MockManufacturerRepository) Update(ctx context.Context, manufacturer *models.Manufacturer) error {
	args := m.Called(ctx, manufacturer)
	return args.Error(0)
}

func (m *MockManufacturerRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssignmentRepository is a mock implementation of repositories.ProductCategoryAssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) GetForProduct(ctx context.Context, productID uint) ([]models.ProductCategoryAssignment, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductCategoryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByProductAndCategory(ctx context.Context, productID, categoryID uint) (*models.ProductCategoryAssignment, error) {
	args := m.Called(ctx, productID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductCategoryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetPrimaryForProduct(ctx context.Context, productID uint) (*models.ProductCategoryAssignment, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductCategoryAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *models.ProductCategoryAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, assignment *models.ProductCategoryAssignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
