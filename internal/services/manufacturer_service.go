package services

import (
	"context"

	"musicostore/internal/models"
	"musicostore/internal/repositories"
)

// ManufacturerService handles business logic related to manufacturers.
type ManufacturerService struct {
	repo repositories.ManufacturerRepository
}

// NewManufacturerService creates a new ManufacturerService.
func NewManufacturerService(repo repositories.ManufacturerRepository) *ManufacturerService {
	return &ManufacturerService{repo: repo}
}

func (s *ManufacturerService) GetAll(ctx context.Context) ([]models.Manufacturer, error) {
	return s.repo.GetAll(ctx)
}

func (s *ManufacturerService) GetByID(ctx context.Context, id uint) (*models.Manufacturer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ManufacturerService) Create(ctx context.Context, manufacturer *models.Manufacturer) error {
	return s.repo.Create(ctx, manufacturer)
}

func (s *ManufacturerService) Update(ctx context.Context, manufacturer *models.Manufacturer) error {
	return s.repo.Update(ctx, manufacturer)
}

func (s *ManufacturerService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
