package main

import (
	"os"
	"time"

	"github.com/ardani17/barber-sub001/internal/application/service"
	"github.com/ardani17/barber-sub001/internal/config"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/ardani17/barber-sub001/internal/infrastructure/cache"
	"github.com/ardani17/barber-sub001/internal/infrastructure/database"
	"github.com/ardani17/barber-sub001/internal/infrastructure/repository"
	"github.com/ardani17/barber-sub001/internal/presentation/http/handler"
	"github.com/ardani17/barber-sub001/internal/presentation/http/routes"
	"github.com/ardani17/barber-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	// Structured logging; pretty console output outside production
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.App.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("invalid timezone")
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := database.SeedOwner(db, &cfg.Seed); err != nil {
		log.Warn().Err(err).Msg("failed to seed owner account")
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	barberRepo := repository.NewBarberRepository(db)
	productRepo := repository.NewProductRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	attendanceRepo := repository.NewAttendanceEventRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	debtRepo := repository.NewSalaryDebtRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	dashboardCache := cache.NewMemoryCache(time.Minute)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	barberService := service.NewBarberService(barberRepo, transactionRepo)
	catalogService := service.NewCatalogService(productRepo, serviceRepo, transactionRepo, cfg.Shop.LowStockThreshold)
	checkoutService := service.NewCheckoutService(transactionRepo, productRepo, serviceRepo, barberRepo, dashboardCache)
	transactionService := service.NewTransactionService(transactionRepo)
	attendanceService := service.NewAttendanceService(
		attendanceRepo,
		barberRepo,
		location,
		enum.AttendanceStatus(cfg.Shop.AttendanceDefaultStatus),
	)
	expenseService := service.NewExpenseService(expenseRepo)
	debtService := service.NewDebtService(debtRepo, barberRepo)
	payrollService := service.NewPayrollService(barberRepo, transactionRepo, debtRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, expenseRepo, dashboardCache, cfg.Shop.DashboardCacheTTL)

	// Handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Barber:      handler.NewBarberHandler(barberService),
		Product:     handler.NewProductHandler(catalogService),
		Service:     handler.NewServiceHandler(catalogService),
		Checkout:    handler.NewCheckoutHandler(checkoutService),
		Transaction: handler.NewTransactionHandler(transactionService, location),
		Attendance:  handler.NewAttendanceHandler(attendanceService, location),
		Expense:     handler.NewExpenseHandler(expenseService, location),
		Debt:        handler.NewDebtHandler(debtService),
		Payroll:     handler.NewPayrollHandler(payrollService, location),
		Dashboard:   handler.NewDashboardHandler(dashboardService, location),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Str("env", cfg.App.Env).Msg("starting server")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
