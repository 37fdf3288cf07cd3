package repositories

import (
	"context"
	"errors"
	"fmt"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"

	"gorm.io/gorm"
)

// GORMGiftCardRepository is a GORM implementation of GiftCardRepository.
type GORMGiftCardRepository struct {
	db *gorm.DB
}

// NewGORMGiftCardRepository creates a new instance of GORMGiftCardRepository.
func NewGORMGiftCardRepository(db *gorm.DB) *GORMGiftCardRepository {
	return &GORMGiftCardRepository{db: db}
}

// GetAll retrieves all gift cards with their coupons.
func (r *GORMGiftCardRepository) GetAll(ctx context.Context) ([]models.GiftCard, error) {
	var cards []models.GiftCard
	if err := r.db.WithContext(ctx).Preload("Coupons").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get all gift cards: %w", err)
	}
	return cards, nil
}

// GetByID retrieves a single gift card with its coupons.
func (r *GORMGiftCardRepository) GetByID(ctx context.Context, id uint) (*models.GiftCard, error) {
	var card models.GiftCard
	err := r.db.WithContext(ctx).Preload("Coupons").First(&card, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("gift card with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get gift card by id %d: %w", id, err)
	}
	return &card, nil
}

// Create creates a new gift card.
func (r *GORMGiftCardRepository) Create(ctx context.Context, card *models.GiftCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create gift card: %w", err)
	}
	return nil
}

// Delete deletes a gift card; its coupons cascade with it.
func (r *GORMGiftCardRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Select("Coupons").Delete(&models.GiftCard{ID: id})
	if res.Error != nil {
		return fmt.Errorf("failed to delete gift card %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("gift card with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{db: db}
}

// GetAll retrieves all coupons.
func (r *GORMCouponRepository) GetAll(ctx context.Context) ([]models.GiftCardCoupon, error) {
	var coupons []models.GiftCardCoupon
	if err := r.db.WithContext(ctx).Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to get all coupons: %w", err)
	}
	return coupons, nil
}

// GetByCode retrieves the coupon with the given code, or (nil, nil) when the
// code is unknown.
func (r *GORMCouponRepository) GetByCode(ctx context.Context, code string) (*models.GiftCardCoupon, error) {
	var coupon models.GiftCardCoupon
	err := r.db.WithContext(ctx).First(&coupon, "coupon_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get coupon by code: %w", err)
	}
	return &coupon, nil
}

// GetByOrderID retrieves the coupon bound to the order, or (nil, nil) when the
// order has none.
func (r *GORMCouponRepository) GetByOrderID(ctx context.Context, orderID uint) (*models.GiftCardCoupon, error) {
	var coupon models.GiftCardCoupon
	err := r.db.WithContext(ctx).First(&coupon, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get coupon for order %d: %w", orderID, err)
	}
	return &coupon, nil
}

// Create creates a new coupon. A unique-index collision on the code maps to
// ErrDuplicateCouponCode so the caller can retry with a fresh code.
func (r *GORMCouponRepository) Create(ctx context.Context, coupon *models.GiftCardCoupon) error {
	if err := r.db.WithContext(ctx).Create(coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("coupon code %q: %w", coupon.CouponCode, ErrDuplicateCouponCode)
		}
		return fmt.Errorf("failed to create coupon: %w", err)
	}
	return nil
}

// BindToOrder attaches the coupon to the order with a conditional update: the
// write only lands if the coupon is still unbound, which closes the
// check-then-write race between concurrent redemptions.
func (r *GORMCouponRepository) BindToOrder(ctx context.Context, couponID, orderID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.GiftCardCoupon{}).
		Where("id = ? AND order_id IS NULL", couponID).
		Update("order_id", orderID)
	if res.Error != nil {
		return fmt.Errorf("failed to bind coupon %d to order %d: %w", couponID, orderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon %d: %w", couponID, ErrCouponAlreadyBound)
	}
	return nil
}

// Release detaches the coupon from its order, returning it to the pool.
func (r *GORMCouponRepository) Release(ctx context.Context, couponID uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.GiftCardCoupon{}).
		Where("id = ?", couponID).
		Update("order_id", nil)
	if res.Error != nil {
		return fmt.Errorf("failed to release coupon %d: %w", couponID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("coupon with id %d: %w", couponID, apperrors.ErrNotFound)
	}
	return nil
}
