package routes

import (
	"time"

	"github.com/ardani17/barber-sub001/internal/config"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	domainRepo "github.com/ardani17/barber-sub001/internal/domain/repository"
	"github.com/ardani17/barber-sub001/internal/presentation/http/handler"
	"github.com/ardani17/barber-sub001/internal/presentation/http/middleware"
	"github.com/ardani17/barber-sub001/pkg/ratelimit"
	"github.com/ardani17/barber-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Barber      *handler.BarberHandler
	Product     *handler.ProductHandler
	Service     *handler.ServiceHandler
	Checkout    *handler.CheckoutHandler
	Transaction *handler.TransactionHandler
	Attendance  *handler.AttendanceHandler
	Expense     *handler.ExpenseHandler
	Debt        *handler.DebtHandler
	Payroll     *handler.PayrollHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h, deps)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	loginLimiter := ratelimit.NewLimiter(
		ratelimit.NewMemoryStore(5*time.Minute),
		deps.Cfg.RateLimit.LoginAttempts,
		deps.Cfg.RateLimit.LoginWindow,
	)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(loginLimiter), h.Auth.Login)
		auth.POST("/register", middleware.OptionalAuthMiddleware(deps.JWTManager), h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	owner := string(enum.RoleOwner)
	cashier := string(enum.RoleCashier)

	// Checkout: cashiers and the owner; retries replay via idempotency keys
	protected.POST("/checkout",
		middleware.Idempotency(deps.IdempotencyRepo),
		middleware.RequireRole(owner, cashier),
		h.Checkout.Checkout,
	)

	// Transactions (read-only ledger)
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.Search)
		transactions.GET("/:id", h.Transaction.Get)
	}

	// Attendance
	attendance := protected.Group("/attendance")
	{
		attendance.POST("/events", h.Attendance.RecordEvent)
		attendance.GET("/records", h.Attendance.ListRecords)
	}

	// Barbers: reads for all operators, writes for the owner
	barbers := protected.Group("/barbers")
	{
		barbers.GET("", h.Barber.List)
		barbers.GET("/:id", h.Barber.Get)
		barbers.POST("", middleware.RequireRole(owner), h.Barber.Create)
		barbers.PUT("/:id", middleware.RequireRole(owner), h.Barber.Update)
		barbers.PATCH("/:id/active", middleware.RequireRole(owner), h.Barber.SetActive)
		barbers.DELETE("/:id", middleware.RequireRole(owner), h.Barber.Delete)
	}

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.POST("", middleware.RequireRole(owner), h.Product.Create)
		products.PUT("/:id", middleware.RequireRole(owner), h.Product.Update)
		products.DELETE("/:id", middleware.RequireRole(owner), h.Product.Delete)
	}

	// Services
	services := protected.Group("/services")
	{
		services.GET("", h.Service.List)
		services.GET("/:id", h.Service.Get)
		services.POST("", middleware.RequireRole(owner), h.Service.Create)
		services.PUT("/:id", middleware.RequireRole(owner), h.Service.Update)
		services.DELETE("/:id", middleware.RequireRole(owner), h.Service.Delete)
	}

	// Expenses: owner only
	expenses := protected.Group("/expenses")
	expenses.Use(middleware.RequireRole(owner))
	{
		expenses.GET("", h.Expense.List)
		expenses.GET("/:id", h.Expense.Get)
		expenses.POST("", h.Expense.Create)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	// Salary debts: owner only
	debts := protected.Group("/debts")
	debts.Use(middleware.RequireRole(owner))
	{
		debts.GET("", h.Debt.List)
		debts.POST("", h.Debt.Create)
		debts.POST("/:id/pay", h.Debt.MarkPaid)
	}

	// Payroll: owner only
	payroll := protected.Group("/payroll")
	payroll.Use(middleware.RequireRole(owner))
	{
		payroll.GET("", h.Payroll.ReconcileAll)
		payroll.GET("/:barberId", h.Payroll.Reconcile)
		payroll.POST("/:barberId/payout", h.Payroll.Payout)
	}

	// Dashboard: owner only
	protected.GET("/dashboard", middleware.RequireRole(owner), h.Dashboard.GetStats)
}
