package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"musicostore/internal/handlers"
	"musicostore/internal/middleware"
	"musicostore/internal/models"
	"musicostore/internal/repositories"
	"musicostore/internal/services"
	"musicostore/pkg/rabbitmq"
)

func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:musicostore.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	v.SetDefault("JWT_SECRET", "change_me_in_production")
	v.SetDefault("CURRENCY_RATE_USD", 1.0)
	v.SetDefault("CURRENCY_RATE_EUR", 0.92)
	v.SetDefault("CURRENCY_RATE_CZK", 22.8)
	v.AutomaticEnv()
	return v
}

func openDatabase(v *viper.Viper) (*gorm.DB, error) {
	driver := v.GetString("DATABASE_DRIVER")
	dsn := v.GetString("DATABASE_DSN")

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}
	return gorm.Open(dialector, &gorm.Config{TranslateError: true})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
		&models.User{},
	)
}

// seedOrderStates inserts the lifecycle states orders move through. Seeding
// is idempotent so restarts do not duplicate rows.
func seedOrderStates(db *gorm.DB) error {
	states := []string{
		models.StateCreated,
		"Paid",
		"Shipped",
		"Delivered",
		"Cancelled",
	}
	for _, name := range states {
		state := models.OrderState{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&state).Error; err != nil {
			return err
		}
	}
	return nil
}

func currencyRates(v *viper.Viper) map[models.Currency]float64 {
	return map[models.Currency]float64{
		models.CurrencyUSD: v.GetFloat64("CURRENCY_RATE_USD"),
		models.CurrencyEUR: v.GetFloat64("CURRENCY_RATE_EUR"),
		models.CurrencyCZK: v.GetFloat64("CURRENCY_RATE_CZK"),
	}
}

// newApp wires repositories, services and handlers into a configured Fiber
// app. publisher may be nil when no message broker is available.
func newApp(v *viper.Viper, db *gorm.DB, publisher services.OrderEventPublisher) *fiber.App {
	// Repositories
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	manufacturerRepo := repositories.NewGORMManufacturerRepository(db)
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
	userRepo := repositories.NewGORMUserRepository(db)
	assignmentRepo := repositories.NewGORMProductCategoryAssignmentRepository(db)
	editLogRepo := repositories.NewGORMProductEditLogRepository(db)
	uow := repositories.NewGORMUnitOfWork(db)

	// Services
	converter := services.NewCurrencyConverter(currencyRates(v))
	productService := services.NewProductService(productRepo, editLogRepo, customerRepo)
	assignmentService := services.NewCategoryAssignmentService(assignmentRepo, productRepo, categoryRepo)
	searchService := services.NewSearchService(productRepo, categoryRepo, manufacturerRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	manufacturerService := services.NewManufacturerService(manufacturerRepo)
	storageService := services.NewStorageService(storageRepo, stockRepo, productRepo)
	customerService := services.NewCustomerService(customerRepo, addressRepo, custAddrRepo)
	giftCardService := services.NewGiftCardService(giftCardRepo, couponRepo)
	orderService := services.NewOrderService(
		uow, orderRepo, productRepo, stateRepo, logRepo, custAddrRepo,
		giftCardService, converter, publisher,
	)
	authService := services.NewAuthService(userRepo, v.GetString("JWT_SECRET"))

	// Handlers
	productHandler := handlers.NewProductHandler(productService)
	assignmentHandler := handlers.NewCategoryAssignmentHandler(assignmentService)
	searchHandler := handlers.NewSearchHandler(searchService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	manufacturerHandler := handlers.NewManufacturerHandler(manufacturerService)
	storageHandler := handlers.NewStorageHandler(storageService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	giftCardHandler := handlers.NewGiftCardHandler(giftCardService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1")
	authHandler.RegisterRoutes(apiV1)

	// Everything registered from here on requires a valid token.
	apiV1.Use(middleware.AuthRequired(authService))
	productHandler.RegisterRoutes(apiV1)
	assignmentHandler.RegisterRoutes(apiV1)
	searchHandler.RegisterRoutes(apiV1)
	categoryHandler.RegisterRoutes(apiV1)
	manufacturerHandler.RegisterRoutes(apiV1)
	storageHandler.RegisterRoutes(apiV1)
	customerHandler.RegisterRoutes(apiV1)
	giftCardHandler.RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1)

	return app
}

func main() {
	v := loadConfig()

	db, err := openDatabase(v)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := seedOrderStates(db); err != nil {
		log.Fatalf("Failed to seed order states: %v", err)
	}

	// The message broker is optional: with no URL configured, order events
	// are skipped and the rest of the app works normally.
	var publisher services.OrderEventPublisher
	rabbitMQURL := v.GetString("RABBITMQ_URL")
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		go func() {
			log.Println("Starting RabbitMQ consumer for order events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag %d, type %s): %s",
					msg.DeliveryTag, msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	app := newApp(v, db, publisher)

	appPort := v.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
