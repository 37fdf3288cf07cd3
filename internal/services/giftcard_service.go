package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
	"musicostore/internal/repositories"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const (
	giftCardCacheTTL     = 10 * time.Minute
	giftCardCacheCleanup = 2 * time.Minute

	// couponCodeLength is the number of characters in a generated coupon code.
	couponCodeLength = 10

	// couponGenerateAttempts bounds the retry loop when a generated code
	// collides with an existing one.
	couponGenerateAttempts = 5
)

// GiftCardService handles business logic for gift cards and their coupons.
// Gift card reads go through a TTL memory cache; every write path drops the
// affected entry so stale data never outlives a mutation.
type GiftCardService struct {
	giftCardRepo repositories.GiftCardRepository
	couponRepo   repositories.CouponRepository
	cache        *gocache.Cache
}

// NewGiftCardService creates a new GiftCardService.
func NewGiftCardService(giftCardRepo repositories.GiftCardRepository, couponRepo repositories.CouponRepository) *GiftCardService {
	return &GiftCardService{
		giftCardRepo: giftCardRepo,
		couponRepo:   couponRepo,
		cache:        gocache.New(giftCardCacheTTL, giftCardCacheCleanup),
	}
}

func giftCardCacheKey(id uint) string {
	return fmt.Sprintf("giftcard_%d", id)
}

// FindAll retrieves all gift cards with their coupons.
func (s *GiftCardService) FindAll(ctx context.Context) ([]models.GiftCard, error) {
	return s.giftCardRepo.GetAll(ctx)
}

// GetByID retrieves a single gift card, serving repeated reads from cache.
// Callers always receive their own copy; mutating it cannot leak into the
// cache or into other callers.
func (s *GiftCardService) GetByID(ctx context.Context, id uint) (*models.GiftCard, error) {
	key := giftCardCacheKey(id)
	if cached, ok := s.cache.Get(key); ok {
		return cloneGiftCard(cached.(*models.GiftCard)), nil
	}

	card, err := s.giftCardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(key, cloneGiftCard(card))
	return card, nil
}

// cloneGiftCard copies a gift card together with its coupon slice.
func cloneGiftCard(card *models.GiftCard) *models.GiftCard {
	clone := *card
	clone.Coupons = append([]models.GiftCardCoupon(nil), card.Coupons...)
	return &clone
}

// Create creates a new gift card with an empty coupon pool.
func (s *GiftCardService) Create(ctx context.Context, req models.CreateGiftCardRequest) (*models.GiftCard, error) {
	if !req.ValidFrom.Before(req.ValidTo) {
		return nil, fmt.Errorf("valid_from must be before valid_to: %w", apperrors.ErrValidation)
	}
	if !req.CurrencyCode.Valid() {
		return nil, fmt.Errorf("unsupported currency %q: %w", req.CurrencyCode, apperrors.ErrValidation)
	}

	card := &models.GiftCard{
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		ValidFrom:    req.ValidFrom,
		ValidTo:      req.ValidTo,
	}
	if err := s.giftCardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	s.cache.Delete(giftCardCacheKey(card.ID))
	return card, nil
}

// Delete deletes a gift card and its coupons.
func (s *GiftCardService) Delete(ctx context.Context, id uint) error {
	if err := s.giftCardRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(giftCardCacheKey(id))
	return nil
}

// GenerateCoupon mints a fresh single-use coupon for the gift card. Codes are
// opaque upper-cased alphanumerics; uniqueness is enforced by the store's
// unique index, with a bounded retry on collision.
func (s *GiftCardService) GenerateCoupon(ctx context.Context, giftCardID uint) (*models.GiftCardCoupon, error) {
	if _, err := s.giftCardRepo.GetByID(ctx, giftCardID); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < couponGenerateAttempts; attempt++ {
		coupon := &models.GiftCardCoupon{
			GiftCardID: giftCardID,
			CouponCode: generateCouponCode(),
		}
		err := s.couponRepo.Create(ctx, coupon)
		if err == nil {
			s.cache.Delete(giftCardCacheKey(giftCardID))
			return coupon, nil
		}
		if !errors.Is(err, repositories.ErrDuplicateCouponCode) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("could not generate a unique coupon code after %d attempts", couponGenerateAttempts)
}

// FindCouponByCode looks up a coupon by its code; (nil, nil) when unknown.
// Codes are case-normalized before lookup.
func (s *GiftCardService) FindCouponByCode(ctx context.Context, code string) (*models.GiftCardCoupon, error) {
	return s.couponRepo.GetByCode(ctx, NormalizeCouponCode(code))
}

// FindCouponForOrder looks up the coupon bound to an order; (nil, nil) when
// the order has none.
func (s *GiftCardService) FindCouponForOrder(ctx context.Context, orderID uint) (*models.GiftCardCoupon, error) {
	return s.couponRepo.GetByOrderID(ctx, orderID)
}

// BindCoupon attaches the coupon to an order and drops the owning gift card
// from cache.
func (s *GiftCardService) BindCoupon(ctx context.Context, coupon *models.GiftCardCoupon, orderID uint) error {
	if err := s.couponRepo.BindToOrder(ctx, coupon.ID, orderID); err != nil {
		if errors.Is(err, repositories.ErrCouponAlreadyBound) {
			return fmt.Errorf("coupon %s is already redeemed: %w", coupon.CouponCode, apperrors.ErrInvalidOperation)
		}
		return err
	}
	s.cache.Delete(giftCardCacheKey(coupon.GiftCardID))
	return nil
}

// ReleaseCoupon returns the coupon to the pool and drops the owning gift card
// from cache.
func (s *GiftCardService) ReleaseCoupon(ctx context.Context, coupon *models.GiftCardCoupon) error {
	if err := s.couponRepo.Release(ctx, coupon.ID); err != nil {
		return err
	}
	s.cache.Delete(giftCardCacheKey(coupon.GiftCardID))
	return nil
}

// NormalizeCouponCode trims and upper-cases a user-supplied coupon code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// generateCouponCode derives a 10-character upper-case code from a random
// UUID. Collisions are vanishingly rare and caught by the unique index.
func generateCouponCode() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:couponCodeLength]
}
