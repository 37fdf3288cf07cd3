package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"musicostore/internal/handlers"
	"musicostore/internal/models"
	"musicostore/internal/repositories"
	"musicostore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestApp builds the full HTTP surface on an isolated in-memory SQLite
// database. Auth middleware is left out; it has its own tests.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Manufacturer{},
		&models.Product{},
		&models.ProductCategoryAssignment{},
		&models.ProductEditLog{},
		&models.Storage{},
		&models.Stock{},
		&models.Customer{},
		&models.Address{},
		&models.CustomerAddress{},
		&models.OrderState{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusLogEntry{},
		&models.GiftCard{},
		&models.GiftCardCoupon{},
	)
	require.NoError(t, err)

	for _, name := range []string{"Created", "Paid", "Shipped", "Delivered", "Cancelled"} {
		require.NoError(t, db.Create(&models.OrderState{Name: name}).Error)
	}

	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	manufacturerRepo := repositories.NewGORMManufacturerRepository(db)
	assignmentRepo := repositories.NewGORMProductCategoryAssignmentRepository(db)
	editLogRepo := repositories.NewGORMProductEditLogRepository(db)
	storageRepo := repositories.NewGORMStorageRepository(db)
	stockRepo := repositories.NewGORMStockRepository(db)
	customerRepo := repositories.NewGORMCustomerRepository(db)
	addressRepo := repositories.NewGORMAddressRepository(db)
	custAddrRepo := repositories.NewGORMCustomerAddressRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	stateRepo := repositories.NewGORMOrderStateRepository(db)
	logRepo := repositories.NewGORMOrderStatusLogRepository(db)
	giftCardRepo := repositories.NewGORMGiftCardRepository(db)
	couponRepo := repositories.NewGORMCouponRepository(db)
	uow := repositories.NewGORMUnitOfWork(db)

	converter := services.NewCurrencyConverter(nil)
	giftCardService := services.NewGiftCardService(giftCardRepo, couponRepo)
	orderService := services.NewOrderService(
		uow, orderRepo, productRepo, stateRepo, logRepo, custAddrRepo,
		giftCardService, converter, nil,
	)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewProductHandler(services.NewProductService(productRepo, editLogRepo, customerRepo)).RegisterRoutes(apiV1)
	handlers.NewCategoryAssignmentHandler(services.NewCategoryAssignmentService(assignmentRepo, productRepo, categoryRepo)).RegisterRoutes(apiV1)
	handlers.NewSearchHandler(services.NewSearchService(productRepo, categoryRepo, manufacturerRepo)).RegisterRoutes(apiV1)
	handlers.NewCategoryHandler(services.NewCategoryService(categoryRepo)).RegisterRoutes(apiV1)
	handlers.NewManufacturerHandler(services.NewManufacturerService(manufacturerRepo)).RegisterRoutes(apiV1)
	handlers.NewStorageHandler(services.NewStorageService(storageRepo, stockRepo, productRepo)).RegisterRoutes(apiV1)
	handlers.NewCustomerHandler(services.NewCustomerService(customerRepo, addressRepo, custAddrRepo)).RegisterRoutes(apiV1)
	handlers.NewGiftCardHandler(giftCardService).RegisterRoutes(apiV1)
	handlers.NewOrderHandler(orderService).RegisterRoutes(apiV1)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	app := setupTestApp(t)

	// Catalog and warehouse fixtures.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Fender Stratocaster",
		"current_price": 125.0,
		"currency_code": "EUR",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/storages", fiber.Map{"name": "Main warehouse"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var storage models.Storage
	decode(t, resp, &storage)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/stocks", fiber.Map{
		"storage_id":       storage.ID,
		"product_id":       product.ID,
		"current_quantity": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var stock models.Stock
	decode(t, resp, &stock)

	// Customer with a main delivery address.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/customers", fiber.Map{
		"first_name": "Jana",
		"last_name":  "Novak",
		"email":      "jana@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer models.Customer
	decode(t, resp, &customer)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/addresses", fiber.Map{
		"street":   "Main St 1",
		"city":     "Prague",
		"zip_code": "11000",
		"country":  "CZ",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var address models.Address
	decode(t, resp, &address)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/customers/%d/addresses", customer.ID), fiber.Map{
		"address_id": address.ID,
		"is_main":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Creating an order freezes prices, starts the status log and
	// decrements stock.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"customer_id": customer.ID,
		"items": []fiber.Map{
			{"product_id": product.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.OrderView
	decode(t, resp, &order)
	assert.Equal(t, "Created", order.CurrentState)
	assert.Equal(t, 250.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 125.0, order.Items[0].PricePerItem)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/stocks/%d", stock.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updatedStock models.Stock
	decode(t, resp, &updatedStock)
	assert.Equal(t, 8, updatedStock.CurrentQuantity)

	// A later catalog price change never touches the frozen item prices.
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", product.ID), fiber.Map{
		"name":          "Fender Stratocaster",
		"current_price": 999.0,
		"currency_code": "EUR",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.OrderID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var frozen models.OrderView
	decode(t, resp, &frozen)
	assert.Equal(t, 250.0, frozen.TotalAmount)
	require.Len(t, frozen.Items, 1)
	assert.Equal(t, 125.0, frozen.Items[0].PricePerItem)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/states", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var states []string
	decode(t, resp, &states)
	assert.Equal(t, []string{"Created", "Paid", "Shipped", "Delivered", "Cancelled"}, states)

	// Gift card redemption.
	now := time.Now().UTC()
	resp = doJSON(t, app, http.MethodPost, "/api/v1/gift-cards", fiber.Map{
		"amount":        20.0,
		"currency_code": "EUR",
		"valid_from":    now.Add(-time.Hour).Format(time.RFC3339),
		"valid_to":      now.Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var card models.GiftCard
	decode(t, resp, &card)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/gift-cards/%d/coupons", card.ID), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var coupon models.GiftCardCoupon
	decode(t, resp, &coupon)
	require.Len(t, coupon.CouponCode, 10)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/apply-gift-card", order.OrderID), fiber.Map{
		"coupon_code": coupon.CouponCode,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.OrderID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var discounted models.OrderView
	decode(t, resp, &discounted)
	assert.Equal(t, 20.0, discounted.Discount)
	assert.Equal(t, 230.0, discounted.TotalAmount)
	assert.Equal(t, coupon.CouponCode, discounted.GiftCardCouponCode)

	// A second application on the same order is rejected.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/apply-gift-card", order.OrderID), fiber.Map{
		"coupon_code": coupon.CouponCode,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Removing returns the coupon to the pool and restores the total.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d/remove-gift-card", order.OrderID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.OrderID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var restored models.OrderView
	decode(t, resp, &restored)
	assert.Equal(t, 250.0, restored.TotalAmount)
	assert.Empty(t, restored.GiftCardCouponCode)

	// State changes append to the log; once past Created, gift cards are
	// rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders/change-state", fiber.Map{
		"order_id":     order.OrderID,
		"new_state_id": 2,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.OrderID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var paid models.OrderView
	decode(t, resp, &paid)
	assert.Equal(t, "Paid", paid.CurrentState)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/apply-gift-card", order.OrderID), fiber.Map{
		"coupon_code": coupon.CouponCode,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/customer/%d", customer.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var customerOrders []models.OrderView
	decode(t, resp, &customerOrders)
	assert.Len(t, customerOrders, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	app := setupTestApp(t)

	// No items.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"customer_id": 1,
		"items":       []fiber.Map{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Non-positive quantity.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"customer_id": 1,
		"items": []fiber.Map{
			{"product_id": 1, "quantity": 0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestApplyGiftCardToUnknownOrder(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/orders/999/apply-gift-card", fiber.Map{
		"coupon_code": "ABCDEF1234",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUnknownCouponCodeIsNotFound(t *testing.T) {
	app := setupTestApp(t)

	// Minimal order setup.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Drumsticks",
		"current_price": 12.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/customers", fiber.Map{
		"first_name": "Tom",
		"last_name":  "Waits",
		"email":      "tom@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer models.Customer
	decode(t, resp, &customer)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/addresses", fiber.Map{
		"street":   "Side St 2",
		"city":     "Brno",
		"zip_code": "60200",
		"country":  "CZ",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var address models.Address
	decode(t, resp, &address)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/customers/%d/addresses", customer.ID), fiber.Map{
		"address_id": address.ID,
		"is_main":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"customer_id": customer.ID,
		"items": []fiber.Map{
			{"product_id": product.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.OrderView
	decode(t, resp, &order)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/apply-gift-card", order.OrderID), fiber.Map{
		"coupon_code": "NOSUCHCODE",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteOrderKeepsCouponPool(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Tuner",
		"current_price": 30.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/customers", fiber.Map{
		"first_name": "Nina",
		"last_name":  "Simone",
		"email":      "nina@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer models.Customer
	decode(t, resp, &customer)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/addresses", fiber.Map{
		"street":   "Third St 3",
		"city":     "Prague",
		"zip_code": "11000",
		"country":  "CZ",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var address models.Address
	decode(t, resp, &address)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/customers/%d/addresses", customer.ID), fiber.Map{
		"address_id": address.ID,
		"is_main":    true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"customer_id": customer.ID,
		"items": []fiber.Map{
			{"product_id": product.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.OrderView
	decode(t, resp, &order)

	now := time.Now().UTC()
	resp = doJSON(t, app, http.MethodPost, "/api/v1/gift-cards", fiber.Map{
		"amount":        5.0,
		"currency_code": "USD",
		"valid_from":    now.Add(-time.Hour).Format(time.RFC3339),
		"valid_to":      now.Add(time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var card models.GiftCard
	decode(t, resp, &card)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/gift-cards/%d/coupons", card.ID), nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var coupon models.GiftCardCoupon
	decode(t, resp, &coupon)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", order.OrderID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.OrderID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The gift card and its unredeemed coupon outlive the order.
	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/gift-cards/%d", card.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var survivingCard models.GiftCard
	decode(t, resp, &survivingCard)
	require.Len(t, survivingCard.Coupons, 1)
	assert.Equal(t, coupon.CouponCode, survivingCard.Coupons[0].CouponCode)
}

func TestProductCategoryAssignmentOverHTTP(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Gibson Les Paul",
		"current_price": 2100.0,
		"currency_code": "USD",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)

	var guitars, electric models.Category
	resp = doJSON(t, app, http.MethodPost, "/api/v1/categories", fiber.Map{"name": "Guitars"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &guitars)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/categories", fiber.Map{"name": "Electric"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &electric)

	// The first assignment becomes the primary even when not requested.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/products/%d/categories", product.ID), fiber.Map{
		"category_id": guitars.ID,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/products/%d/categories", product.ID), fiber.Map{
		"category_id": electric.ID,
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/products/%d/categories", product.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listing []models.ProductCategoryView
	decode(t, resp, &listing)
	require.Len(t, listing, 2)
	assert.Equal(t, "Guitars", listing[0].Name)
	assert.True(t, listing[0].IsPrimary)
	assert.Equal(t, "Electric", listing[1].Name)
	assert.False(t, listing[1].IsPrimary)

	// Duplicate assignments are rejected.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/products/%d/categories", product.ID), fiber.Map{
		"category_id": guitars.ID,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The primary cannot be removed while another category exists.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d/categories/%d", product.ID, guitars.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d/categories/%d", product.ID, electric.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// The last category has to stay.
	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/products/%d/categories/%d", product.ID, guitars.ID), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/products/%d/categories", product.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &listing)
	require.Len(t, listing, 1)
	assert.Equal(t, "Guitars", listing[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/999/categories", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSearchOverHTTP(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Fender Stratocaster",
		"description":   "The classic Fender solid body",
		"current_price": 1200.0,
		"currency_code": "USD",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Pearl Export kit",
		"description":   "Five piece drum kit",
		"current_price": 800.0,
		"currency_code": "USD",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/categories", fiber.Map{"name": "Fender accessories"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/manufacturers", fiber.Map{"name": "Fender", "country": "USA"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/search?query=fender", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result models.SearchResult
	decode(t, resp, &result)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Fender Stratocaster", result.Products[0].Name)
	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Fender accessories", result.Categories[0].Name)
	require.Len(t, result.Manufacturers, 1)
	assert.Equal(t, "Fender", result.Manufacturers[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/search?query=", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProductEditTrailOverHTTP(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":          "Roland TD-17",
		"current_price": 1500.0,
		"currency_code": "USD",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decode(t, resp, &product)

	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/products/%d", product.ID), fiber.Map{
		"name":          "Roland TD-17KVX",
		"current_price": 1650.0,
		"currency_code": "USD",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/products/%d/edit-log", product.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var trail []models.ProductEditLog
	decode(t, resp, &trail)
	require.Len(t, trail, 2)
	assert.Equal(t, product.ID, trail[0].ProductID)
	assert.Nil(t, trail[0].CustomerID)
	assert.False(t, trail[1].EditTime.Before(trail[0].EditTime))

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/999/edit-log", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
