package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/config"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/handler"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/middleware"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Account     *handler.AccountHandler
	Customer    *handler.CustomerHandler
	Transaction *handler.TransactionHandler
	Contract    *handler.ContractHandler
	Purchase    *handler.PurchaseHandler
	Inventory   *handler.InventoryHandler
	Payroll     *handler.PayrollHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Summary)

	// Accounts
	registerAccountRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Transactions
	registerTransactionRoutes(protected, h)

	// Contracts
	registerContractRoutes(protected, h)

	// Purchases
	registerPurchaseRoutes(protected, h)

	// Inventory
	registerInventoryRoutes(protected, h)

	// Employees and recurring bills
	registerPayrollRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerAccountRoutes(protected *gin.RouterGroup, h *Handlers) {
	accounts := protected.Group("/accounts")
	{
		accounts.GET("", h.Account.List)
		accounts.POST("", h.Account.Create)
		accounts.GET("/:id", h.Account.Get)
		accounts.PUT("/:id", h.Account.Update)
		accounts.DELETE("/:id", h.Account.Delete)
		accounts.POST("/:id/adjust-balance", h.Account.AdjustBalance)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.POST("/:id/adjust-balance", h.Customer.AdjustBalance)
	}
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers) {
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id", h.Transaction.Update)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}
}

func registerContractRoutes(protected *gin.RouterGroup, h *Handlers) {
	contracts := protected.Group("/contracts")
	{
		contracts.GET("", h.Contract.List)
		contracts.POST("", h.Contract.Create)
		contracts.GET("/:id", h.Contract.Get)
		contracts.POST("/:id/payments", h.Contract.RecordPayment)
		contracts.POST("/:id/payments/cancel", h.Contract.CancelPayment)
		contracts.POST("/:id/deliver", h.Contract.MarkDelivered)
		contracts.DELETE("/:id", h.Contract.Delete)
	}
}

func registerPurchaseRoutes(protected *gin.RouterGroup, h *Handlers) {
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", h.Purchase.List)
		purchases.POST("", h.Purchase.Create)
		purchases.GET("/:id", h.Purchase.Get)
		purchases.PUT("/:id", h.Purchase.Update)
		purchases.DELETE("/:id", h.Purchase.Delete)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}
}

func registerPayrollRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	{
		employees.GET("", h.Payroll.ListEmployees)
		employees.POST("", h.Payroll.CreateEmployee)
		employees.GET("/:id", h.Payroll.GetEmployee)
		employees.PUT("/:id", h.Payroll.UpdateEmployee)
		employees.DELETE("/:id", h.Payroll.DeleteEmployee)
		employees.POST("/:id/pay-salary", h.Payroll.PaySalary)
	}

	bills := protected.Group("/bills")
	{
		bills.GET("", h.Payroll.ListBills)
		bills.POST("", h.Payroll.CreateBill)
		bills.GET("/:id", h.Payroll.GetBill)
		bills.PUT("/:id", h.Payroll.UpdateBill)
		bills.DELETE("/:id", h.Payroll.DeleteBill)
		bills.POST("/:id/process", h.Payroll.ProcessBill)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
