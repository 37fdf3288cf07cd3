package models

import "time"

// Storage is a physical warehouse location.
type Storage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Address   string    `json:"address" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stock tracks the quantity of one product held in one storage.
type Stock struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	StorageID       uint      `json:"storage_id" validate:"required"`
	ProductID       uint      `json:"product_id" validate:"required"`
	CurrentQuantity int       `json:"current_quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
