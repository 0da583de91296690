package main

import (
	"log"
	"time"

	"jewelry_store/internal/cache"
	"jewelry_store/internal/config"
	"jewelry_store/internal/database"
	"jewelry_store/internal/handlers"
	"jewelry_store/internal/migrations"
	"jewelry_store/internal/repository"
	"jewelry_store/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrations.RunMigrations(db, cfg); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis-backed cache and session store
	redisCache, err := cache.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	jewelryRepo := repository.NewJewelryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Initialize services
	orderLocks := services.NewAggregateLocks()
	inventoryService := services.NewInventoryService(jewelryRepo, redisCache)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, paymentRepo, customerRepo, employeeRepo, jewelryRepo, inventoryService, orderLocks)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, orderLocks)
	customerService := services.NewCustomerService(customerRepo, orderService)
	employeeService := services.NewEmployeeService(employeeRepo, orderRepo)
	jewelryService := services.NewJewelryService(jewelryRepo, orderItemRepo, redisCache)
	accountService := services.NewAccountService(accountRepo, redisCache, time.Duration(cfg.SessionTimeout)*time.Second)

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	jewelryHandler := handlers.NewJewelryHandler(jewelryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	authHandler := handlers.NewAuthHandler(accountService)

	// Setup routes
	router := gin.Default()

	router.POST("/api/auth/login", authHandler.Login)
	router.POST("/api/auth/logout", authHandler.Logout)

	api := router.Group("/api")
	api.Use(handlers.SessionRequired(accountService))
	{
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers", customerHandler.GetAll)
		api.GET("/customers/:id", customerHandler.Get)
		api.PUT("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		api.POST("/employees", employeeHandler.Create)
		api.GET("/employees", employeeHandler.GetAll)
		api.GET("/employees/:id", employeeHandler.Get)
		api.GET("/employees/role/:role", employeeHandler.GetByRole)
		api.PUT("/employees/:id", employeeHandler.Update)
		api.DELETE("/employees/:id", employeeHandler.Delete)

		api.POST("/jewelry", jewelryHandler.Create)
		api.GET("/jewelry", jewelryHandler.GetAll)
		api.GET("/jewelry/:id", jewelryHandler.Get)
		api.GET("/jewelry/type/:type", jewelryHandler.GetByType)
		api.GET("/jewelry/category/:category", jewelryHandler.GetByCategory)
		api.PUT("/jewelry/:id", jewelryHandler.Update)
		api.DELETE("/jewelry/:id", jewelryHandler.Delete)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders", orderHandler.GetAll)
		api.GET("/orders/:id", orderHandler.Get)
		api.GET("/orders/:id/lines", orderHandler.GetLines)
		api.GET("/orders/status/:status", orderHandler.GetByStatus)
		api.GET("/orders/customer/:id", orderHandler.GetByCustomer)
		api.GET("/orders/employee/:id", orderHandler.GetByEmployee)
		api.PUT("/orders/:id", orderHandler.Update)
		api.DELETE("/orders/:id", orderHandler.Delete)

		api.POST("/payments", paymentHandler.Create)
		api.GET("/payments", paymentHandler.GetAll)
		api.GET("/payments/:id", paymentHandler.Get)
		api.GET("/payments/order/:id", paymentHandler.GetByOrder)
		api.GET("/payments/status/:status", paymentHandler.GetByStatus)
		api.PUT("/payments/:id", paymentHandler.Update)
		api.POST("/payments/:id/refund", paymentHandler.Refund)
		api.DELETE("/payments/:id", paymentHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
