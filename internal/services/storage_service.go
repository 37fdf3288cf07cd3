package services

import (
	"context"

	"musicostore/internal/models"
	"musicostore/internal/repositories"
)

// StorageService handles business logic for warehouses and stock levels.
type StorageService struct {
	storageRepo repositories.StorageRepository
	stockRepo   repositories.StockRepository
	productRepo repositories.ProductRepository
}

// NewStorageService creates a new StorageService.
func NewStorageService(
	storageRepo repositories.StorageRepository,
	stockRepo repositories.StockRepository,
	productRepo repositories.ProductRepository,
) *StorageService {
	return &StorageService{
		storageRepo: storageRepo,
		stockRepo:   stockRepo,
		productRepo: productRepo,
	}
}

func (s *StorageService) GetAll(ctx context.Context) ([]models.Storage, error) {
	return s.storageRepo.GetAll(ctx)
}

func (s *StorageService) GetByID(ctx context.Context, id uint) (*models.Storage, error) {
	return s.storageRepo.GetByID(ctx, id)
}

func (s *StorageService) Create(ctx context.Context, storage *models.Storage) error {
	return s.storageRepo.Create(ctx, storage)
}

func (s *StorageService) Update(ctx context.Context, storage *models.Storage) error {
	return s.storageRepo.Update(ctx, storage)
}

func (s *StorageService) Delete(ctx context.Context, id uint) error {
	return s.storageRepo.Delete(ctx, id)
}

// Stock

func (s *StorageService) GetAllStocks(ctx context.Context) ([]models.Stock, error) {
	return s.stockRepo.GetAll(ctx)
}

func (s *StorageService) GetStockByID(ctx context.Context, id uint) (*models.Stock, error) {
	return s.stockRepo.GetByID(ctx, id)
}

// CreateStock records stock of a product in a storage. Both references must
// exist.
func (s *StorageService) CreateStock(ctx context.Context, stock *models.Stock) error {
	if _, err := s.storageRepo.GetByID(ctx, stock.StorageID); err != nil {
		return err
	}
	if _, err := s.productRepo.GetByID(ctx, stock.ProductID); err != nil {
		return err
	}
	return s.stockRepo.Create(ctx, stock)
}

func (s *StorageService) UpdateStock(ctx context.Context, stock *models.Stock) error {
	return s.stockRepo.Update(ctx, stock)
}

func (s *StorageService) DeleteStock(ctx context.Context, id uint) error {
	return s.stockRepo.Delete(ctx, id)
}
