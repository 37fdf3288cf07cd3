package repositories

import (
	"context"
	"errors"

	"musicostore/internal/models"
)

// ErrDuplicateCouponCode is returned by CouponRepository.Create when the
// generated code collides with an existing one; callers retry with a fresh
// code.
var ErrDuplicateCouponCode = errors.New("coupon code already exists")

// ErrCouponAlreadyBound is returned by CouponRepository.BindToOrder when the
// coupon is already attached to an order.
var ErrCouponAlreadyBound = errors.New("coupon already bound to an order")

// GiftCardRepository defines the interface for gift card data access. Reads
// return the gift card with its coupons loaded.
type GiftCardRepository interface {
	GetAll(ctx context.Context) ([]models.GiftCard, error)
	GetByID(ctx context.Context, id uint) (*models.GiftCard, error)
	Create(ctx context.Context, card *models.GiftCard) error
	Delete(ctx context.Context, id uint) error
}

// CouponRepository defines the interface for gift card coupon data access.
type CouponRepository interface {
	GetAll(ctx context.Context) ([]models.GiftCardCoupon, error)
	// GetByCode returns the coupon with the given code, or (nil, nil) when no
	// such code exists.
	GetByCode(ctx context.Context, code string) (*models.GiftCardCoupon, error)
	// GetByOrderID returns the coupon bound to the order, or (nil, nil) when
	// the order has none.
	GetByOrderID(ctx context.Context, orderID uint) (*models.GiftCardCoupon, error)
	Create(ctx context.Context, coupon *models.GiftCardCoupon) error
	// BindToOrder attaches the coupon to the order only if it is currently
	// unbound; returns ErrCouponAlreadyBound otherwise.
	BindToOrder(ctx context.Context, couponID, orderID uint) error
	// Release detaches the coupon from its order, returning it to the pool.
	Release(ctx context.Context, couponID uint) error
}
