package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/application/service"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/config"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/domain/ledger"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/infrastructure/database"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/infrastructure/persistence"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/infrastructure/repository"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/handler"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/routes"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Load the ledger into memory; every mutation is written back
	// asynchronously through the best-effort writer.
	ledgerStore := repository.NewLedgerStore(db)
	snapshot, err := ledgerStore.LoadSnapshot(context.Background())
	if err != nil {
		log.Fatalf("Failed to load ledger snapshot: %v", err)
	}
	book := ledger.New(ledger.WithPersister(persistence.NewBestEffortWriter(ledgerStore, logger)))
	book.Load(snapshot)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	accountService := service.NewAccountService(book)
	customerService := service.NewCustomerService(book)
	transactionService := service.NewTransactionService(book)
	contractService := service.NewContractService(book)
	purchaseService := service.NewPurchaseService(book)
	inventoryService := service.NewInventoryService(book)
	payrollService := service.NewPayrollService(book)
	dashboardService := service.NewDashboardService(book)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Account:     handler.NewAccountHandler(accountService),
		Customer:    handler.NewCustomerHandler(customerService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Contract:    handler.NewContractHandler(contractService),
		Purchase:    handler.NewPurchaseHandler(purchaseService),
		Inventory:   handler.NewInventoryHandler(inventoryService),
		Payroll:     handler.NewPayrollHandler(payrollService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		User:        handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        logger,
	})

	// Start the recurring-bill scheduler
	if cfg.Billing.Enabled {
		scheduler := service.NewBillingScheduler(payrollService, cfg.Billing.CronSpec, logger)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("Failed to start billing scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
