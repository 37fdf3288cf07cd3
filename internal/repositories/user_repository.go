package repositories

import (
	"context"

	"musicostore/internal/models"
)

// UserRepository defines the interface for auth account data access.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
