package models

import "time"

// Customer is a person who places orders.
type Customer struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email     string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone     string `json:"phone" gorm:"type:varchar(30)" validate:"omitempty,max=30"`
	// IsEmployee grants the right to modify the product catalog.
	IsEmployee bool      `json:"is_employee"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Address is a postal address. Addresses are shared records; the link to a
// customer lives in CustomerAddress.
type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Street    string    `json:"street" gorm:"type:varchar(255)" validate:"required,max=255"`
	City      string    `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	ZipCode   string    `json:"zip_code" gorm:"type:varchar(20)" validate:"required,max=20"`
	Country   string    `json:"country" gorm:"type:varchar(100)" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerAddress associates a customer with an address. At most one
// association per customer carries IsMain, the default delivery address.
type CustomerAddress struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index" validate:"required"`
	AddressID  uint      `json:"address_id" validate:"required"`
	IsMain     bool      `json:"is_main"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
