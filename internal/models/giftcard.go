package models

import "time"

// GiftCard carries a fixed discount amount in a single currency, redeemable
// through its coupons within [ValidFrom, ValidTo).
type GiftCard struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	Amount       float64          `json:"amount" validate:"required,gt=0"`
	CurrencyCode Currency         `json:"currency_code" gorm:"type:varchar(3);default:USD" validate:"omitempty,oneof=USD EUR CZK"`
	ValidFrom    time.Time        `json:"valid_from"`
	ValidTo      time.Time        `json:"valid_to"`
	Coupons      []GiftCardCoupon `json:"coupons" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// GiftCardCoupon is a single-use redemption code for a gift card. OrderID is
// nil while the coupon sits in the pool; once bound to an order it can never
// bind to another, though it may be released while the order is still in the
// initial state.
type GiftCardCoupon struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	GiftCardID uint      `json:"gift_card_id" gorm:"index"`
	CouponCode string    `json:"coupon_code" gorm:"uniqueIndex;type:varchar(10)"`
	OrderID    *uint     `json:"order_id" gorm:"uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateGiftCardRequest is the payload for POST /gift-cards.
type CreateGiftCardRequest struct {
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	CurrencyCode Currency  `json:"currency_code" validate:"required,oneof=USD EUR CZK"`
	ValidFrom    time.Time `json:"valid_from" validate:"required"`
	ValidTo      time.Time `json:"valid_to" validate:"required"`
}
