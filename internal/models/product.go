package models

import "time"

// Product represents an item in the store catalog. CurrentPrice is the live
// catalog price; orders freeze their own copy of it at creation time.
type Product struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Description    string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	CurrentPrice   float64   `json:"current_price" validate:"required,gt=0"`
	CurrencyCode   Currency  `json:"currency_code" gorm:"type:varchar(3);default:USD" validate:"omitempty,oneof=USD EUR CZK"`
	CategoryID     *uint     `json:"category_id"`
	ManufacturerID *uint     `json:"manufacturer_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductEditLog records one change to a catalog product: who made it and
// when. Rows are append-only; CustomerID is nil when the change was made
// outside an authenticated session.
type ProductEditLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"index" validate:"required"`
	CustomerID *uint     `json:"customer_id"`
	EditTime   time.Time `json:"edit_time"`
}
