package models

import "time"

// OrderState is one entry of the closed state catalog ("Created", "Paid",
// "Shipped", "Delivered", "Cancelled"). Referenced by status log entries.
type OrderState struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(50)"`
}

// StateCreated is the initial state every order enters. Its absence from the
// catalog is a deployment error.
const StateCreated = "Created"

// OrderItem is one product/quantity line within an order. PricePerItem and
// CurrencyCode are frozen from the product at order time and never change
// afterwards.
type OrderItem struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	OrderID      uint     `json:"order_id" gorm:"index"`
	ProductID    uint     `json:"product_id"`
	Quantity     int      `json:"quantity"`
	PricePerItem float64  `json:"price_per_item"`
	CurrencyCode Currency `json:"currency_code" gorm:"type:varchar(3)"`
}

// OrderStatusLogEntry is one append-only record of an order entering a state.
// Entries are never edited or removed.
type OrderStatusLogEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"index"`
	OrderStateID uint      `json:"order_state_id"`
	LogTime      time.Time `json:"log_time"`
}

// Order is the aggregate root. Items and StatusLog are owned and cascade with
// the order; the gift card coupon is a non-owning reference that survives
// order deletion.
type Order struct {
	ID                uint                  `json:"id" gorm:"primaryKey"`
	CustomerID        uint                  `json:"customer_id" gorm:"index"`
	CustomerAddressID uint                  `json:"customer_address_id"`
	Items             []OrderItem           `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	StatusLog         []OrderStatusLogEntry `json:"status_log" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// CreateOrderItemRequest is one requested line of a new order.
type CreateOrderItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the payload for POST /orders. CustomerAddressID is
// optional; when absent the customer's main address is used.
type CreateOrderRequest struct {
	CustomerID        uint                     `json:"customer_id" validate:"required"`
	CustomerAddressID *uint                    `json:"customer_address_id"`
	Items             []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ChangeOrderStateRequest is the payload for POST /orders/change-state.
type ChangeOrderStateRequest struct {
	OrderID    uint `json:"order_id" validate:"required"`
	NewStateID uint `json:"new_state_id" validate:"required"`
}

// ApplyGiftCardRequest is the payload for POST /orders/:id/apply-gift-card.
type ApplyGiftCardRequest struct {
	CouponCode string `json:"coupon_code" validate:"required"`
}

// OrderItemView is the read-model projection of one line item.
type OrderItemView struct {
	ProductID    uint     `json:"product_id"`
	ProductName  string   `json:"product_name"`
	Quantity     int      `json:"quantity"`
	PricePerItem float64  `json:"price_per_item"`
	CurrencyCode Currency `json:"currency_code"`
	LineTotal    float64  `json:"line_total"`
}

// OrderView is the assembled read-model of an order: totals, discount and
// current state derived from the status log on every read.
type OrderView struct {
	OrderID            uint            `json:"order_id"`
	CustomerID         uint            `json:"customer_id"`
	CustomerAddressID  uint            `json:"customer_address_id"`
	CreatedAt          time.Time       `json:"created_at"`
	CurrentState       string          `json:"current_state"`
	TotalAmount        float64         `json:"total_amount"`
	Discount           float64         `json:"discount,omitempty"`
	GiftCardCouponCode string          `json:"gift_card_coupon_code,omitempty"`
	Items              []OrderItemView `json:"items"`
}
