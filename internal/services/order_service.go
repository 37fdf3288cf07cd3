package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"musicostore/internal/apperrors"
	"musicostore/internal/models"
	"musicostore/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to the message broker.
// Implemented by *rabbitmq.Client; a nil publisher disables publishing.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
	PublishOrderStateChanged(event map[string]interface{}) error
}

// OrderService coordinates the order lifecycle: aggregate creation with
// frozen prices and stock decrement, the append-only status log, gift card
// redemption and the assembled read-model.
type OrderService struct {
	uow          repositories.UnitOfWork
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	stateRepo    repositories.OrderStateRepository
	logRepo      repositories.OrderStatusLogRepository
	custAddrRepo repositories.CustomerAddressRepository
	giftCards    *GiftCardService
	converter    *CurrencyConverter
	publisher    OrderEventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil when no
// message broker is configured.
func NewOrderService(
	uow repositories.UnitOfWork,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	stateRepo repositories.OrderStateRepository,
	logRepo repositories.OrderStatusLogRepository,
	custAddrRepo repositories.CustomerAddressRepository,
	giftCards *GiftCardService,
	converter *CurrencyConverter,
	publisher OrderEventPublisher,
) *OrderService {
	return &OrderService{
		uow:          uow,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		stateRepo:    stateRepo,
		logRepo:      logRepo,
		custAddrRepo: custAddrRepo,
		giftCards:    giftCards,
		converter:    converter,
		publisher:    publisher,
	}
}

// Create validates the request, resolves the delivery address, freezes unit
// prices into line items, decrements stock, appends the initial "Created" log
// entry and returns the assembled read-model. The whole write sequence runs
// in one unit of work.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.OrderView, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("an order must contain at least one item: %w", apperrors.ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity for product %d must be positive: %w",
				item.ProductID, apperrors.ErrValidation)
		}
	}

	addressID, err := s.resolveAddress(ctx, req.CustomerID, req.CustomerAddressID)
	if err != nil {
		return nil, err
	}

	// Freeze price and currency per line from the catalog as it stands now.
	items := make([]models.OrderItem, 0, len(req.Items))
	var orderCurrency models.Currency
	for _, item := range req.Items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		if product.CurrencyCode != "" {
			if orderCurrency != "" && product.CurrencyCode != orderCurrency {
				return nil, fmt.Errorf("order mixes currencies %s and %s: %w",
					orderCurrency, product.CurrencyCode, apperrors.ErrInvalidOperation)
			}
			orderCurrency = product.CurrencyCode
		}

		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			Quantity:     item.Quantity,
			PricePerItem: product.CurrentPrice,
			CurrencyCode: product.CurrencyCode,
		})
	}

	createdState, err := s.stateRepo.GetByName(ctx, models.StateCreated)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("order state %q missing from catalog: %w",
				models.StateCreated, apperrors.ErrConfiguration)
		}
		return nil, err
	}

	order := &models.Order{
		CustomerID:        req.CustomerID,
		CustomerAddressID: addressID,
		Items:             items,
	}

	err = s.uow.Do(ctx, func(tx repositories.OrderStores) error {
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}

		for _, item := range order.Items {
			stock, err := tx.Stocks.FirstByProductID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				continue
			}
			if err := tx.Stocks.Decrement(ctx, stock.ID, item.Quantity); err != nil {
				return err
			}
		}

		return tx.StatusLogs.Append(ctx, &models.OrderStatusLogEntry{
			OrderID:      order.ID,
			OrderStateID: createdState.ID,
			LogTime:      time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.publish(func(p OrderEventPublisher) error {
		return p.PublishOrderCreated(map[string]interface{}{
			"order_id":    order.ID,
			"customer_id": order.CustomerID,
			"state":       models.StateCreated,
		})
	})

	return s.FindByID(ctx, order.ID)
}

// resolveAddress picks the delivery address: the explicit one when given
// (which must belong to the customer), the customer's main address otherwise.
func (s *OrderService) resolveAddress(ctx context.Context, customerID uint, addressID *uint) (uint, error) {
	if addressID == nil {
		main, err := s.custAddrRepo.GetMainForCustomer(ctx, customerID)
		if err != nil {
			return 0, err
		}
		if main == nil {
			return 0, fmt.Errorf("customer %d has no main address: %w",
				customerID, apperrors.ErrInvalidOperation)
		}
		return main.AddressID, nil
	}

	assigned, err := s.custAddrRepo.GetByCustomerAndAddress(ctx, customerID, *addressID)
	if err != nil {
		return 0, err
	}
	if assigned == nil {
		return 0, fmt.Errorf("customer %d does not have address %d assigned: %w",
			customerID, *addressID, apperrors.ErrInvalidOperation)
	}
	return *addressID, nil
}

// FindAll retrieves the read-model for every persisted order.
func (s *OrderService) FindAll(ctx context.Context) ([]models.OrderView, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, orders)
}

// FindByID retrieves the read-model for one order.
func (s *OrderService) FindByID(ctx context.Context, id uint) (*models.OrderView, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, order)
}

// FindByCustomer retrieves the read-models of all orders of one customer.
func (s *OrderService) FindByCustomer(ctx context.Context, customerID uint) ([]models.OrderView, error) {
	orders, err := s.orderRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, orders)
}

// Exists reports whether an order with the given ID is persisted.
func (s *OrderService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.orderRepo.Exists(ctx, id)
}

// Delete removes an order with its items and status log. Any bound coupon is
// a non-owning reference and survives in the pool.
func (s *OrderService) Delete(ctx context.Context, id uint) error {
	return s.orderRepo.Delete(ctx, id)
}

// ChangeState appends a status log entry for the given state. The log is
// deliberately permissive: any state is reachable from any state, and prior
// entries are never touched.
func (s *OrderService) ChangeState(ctx context.Context, req models.ChangeOrderStateRequest) error {
	exists, err := s.orderRepo.Exists(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("order with id %d: %w", req.OrderID, apperrors.ErrNotFound)
	}

	state, err := s.stateRepo.GetByID(ctx, req.NewStateID)
	if err != nil {
		return err
	}

	err = s.logRepo.Append(ctx, &models.OrderStatusLogEntry{
		OrderID:      req.OrderID,
		OrderStateID: state.ID,
		LogTime:      time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.publish(func(p OrderEventPublisher) error {
		return p.PublishOrderStateChanged(map[string]interface{}{
			"order_id": req.OrderID,
			"state":    state.Name,
		})
	})
	return nil
}

// ApplyGiftCard binds a coupon to the order. Preconditions, each failing fast
// with its own error: the order exists, has no coupon yet, the code exists,
// the coupon is unredeemed, the order is still in "Created", and now falls
// within the gift card's validity window.
func (s *OrderService) ApplyGiftCard(ctx context.Context, orderID uint, couponCode string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	existing, err := s.giftCards.FindCouponForOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("order %d already has a gift card applied: %w",
			orderID, apperrors.ErrInvalidOperation)
	}

	coupon, err := s.giftCards.FindCouponByCode(ctx, couponCode)
	if err != nil {
		return err
	}
	if coupon == nil {
		return fmt.Errorf("coupon code %q: %w", couponCode, apperrors.ErrNotFound)
	}
	if coupon.OrderID != nil {
		return fmt.Errorf("coupon %s is already redeemed: %w",
			coupon.CouponCode, apperrors.ErrInvalidOperation)
	}

	state, err := s.currentStateName(ctx, order)
	if err != nil {
		return err
	}
	if state != models.StateCreated {
		return fmt.Errorf("gift card can only be applied in state %q, order %d is %q: %w",
			models.StateCreated, orderID, state, apperrors.ErrInvalidOperation)
	}

	card, err := s.giftCards.GetByID(ctx, coupon.GiftCardID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if now.Before(card.ValidFrom) || !now.Before(card.ValidTo) {
		return fmt.Errorf("gift card %d is not valid at this time: %w",
			card.ID, apperrors.ErrInvalidOperation)
	}

	return s.giftCards.BindCoupon(ctx, coupon, orderID)
}

// RemoveGiftCard unbinds the order's coupon, returning it to the pool. Only
// allowed while the order is still in "Created".
func (s *OrderService) RemoveGiftCard(ctx context.Context, orderID uint) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	state, err := s.currentStateName(ctx, order)
	if err != nil {
		return err
	}
	if state != models.StateCreated {
		return fmt.Errorf("gift card can only be removed in state %q, order %d is %q: %w",
			models.StateCreated, orderID, state, apperrors.ErrInvalidOperation)
	}

	coupon, err := s.giftCards.FindCouponForOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if coupon == nil {
		return fmt.Errorf("order %d has no gift card applied: %w",
			orderID, apperrors.ErrInvalidOperation)
	}

	return s.giftCards.ReleaseCoupon(ctx, coupon)
}

// StateNames returns every state name ordered by catalog identity, for
// building selection controls.
func (s *OrderService) StateNames(ctx context.Context) ([]string, error) {
	states, err := s.stateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(states))
	for _, st := range states {
		names = append(names, st.Name)
	}
	return names, nil
}

func (s *OrderService) buildViews(ctx context.Context, orders []models.Order) ([]models.OrderView, error) {
	views := make([]models.OrderView, 0, len(orders))
	for i := range orders {
		view, err := s.buildView(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// buildView assembles the read-model: line totals, the single-currency
// invariant, converted gift card discount floored at zero, and current state
// plus creation time derived from the status log.
func (s *OrderService) buildView(ctx context.Context, order *models.Order) (*models.OrderView, error) {
	view := &models.OrderView{
		OrderID:           order.ID,
		CustomerID:        order.CustomerID,
		CustomerAddressID: order.CustomerAddressID,
		Items:             make([]models.OrderItemView, 0, len(order.Items)),
	}

	var total float64
	var orderCurrency models.Currency
	for _, item := range order.Items {
		if item.CurrencyCode != "" {
			if orderCurrency != "" && item.CurrencyCode != orderCurrency {
				return nil, fmt.Errorf("order %d contains items in multiple currencies: %w",
					order.ID, apperrors.ErrInvalidOperation)
			}
			orderCurrency = item.CurrencyCode
		}

		var productName string
		if product, err := s.productRepo.GetByID(ctx, item.ProductID); err == nil {
			productName = product.Name
		}

		lineTotal := item.PricePerItem * float64(item.Quantity)
		view.Items = append(view.Items, models.OrderItemView{
			ProductID:    item.ProductID,
			ProductName:  productName,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
			CurrencyCode: item.CurrencyCode,
			LineTotal:    lineTotal,
		})
		total += lineTotal
	}

	coupon, err := s.giftCards.FindCouponForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if coupon != nil {
		card, err := s.giftCards.GetByID(ctx, coupon.GiftCardID)
		if err != nil {
			return nil, err
		}
		if orderCurrency == "" {
			orderCurrency = models.CurrencyUSD
		}
		discount, err := s.converter.Convert(card.Amount, card.CurrencyCode, orderCurrency)
		if err != nil {
			return nil, err
		}
		view.Discount = discount
		view.GiftCardCouponCode = coupon.CouponCode
		total -= discount
		if total < 0 {
			total = 0
		}
	}
	view.TotalAmount = total

	logs := sortedLog(order.StatusLog)
	if len(logs) == 0 {
		view.CreatedAt = time.Now().UTC()
		view.CurrentState = "Unknown"
		return view, nil
	}

	view.CreatedAt = logs[0].LogTime
	view.CurrentState = "Unknown"
	if state, err := s.stateRepo.GetByID(ctx, logs[len(logs)-1].OrderStateID); err == nil {
		view.CurrentState = state.Name
	}
	return view, nil
}

// currentStateName resolves the name of the order's latest status log entry,
// or "Unknown" for an empty log.
func (s *OrderService) currentStateName(ctx context.Context, order *models.Order) (string, error) {
	logs := sortedLog(order.StatusLog)
	if len(logs) == 0 {
		return "Unknown", nil
	}
	state, err := s.stateRepo.GetByID(ctx, logs[len(logs)-1].OrderStateID)
	if err != nil {
		return "Unknown", nil
	}
	return state.Name, nil
}

// sortedLog returns a copy of the status log ordered chronologically.
func sortedLog(entries []models.OrderStatusLogEntry) []models.OrderStatusLogEntry {
	logs := make([]models.OrderStatusLogEntry, len(entries))
	copy(logs, entries)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].LogTime.Before(logs[j].LogTime)
	})
	return logs
}

// publish runs fn against the configured publisher. Event delivery is best
// effort; a broker failure never fails the request.
func (s *OrderService) publish(fn func(p OrderEventPublisher) error) {
	if s.publisher == nil {
		return
	}
	if err := fn(s.publisher); err != nil {
		log.Printf("Warning: failed to publish order event: %v", err)
	}
}
