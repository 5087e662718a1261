package database

import (
	"fmt"

	"github.com/ardani17/barber-sub001/internal/config"
	"github.com/ardani17/barber-sub001/internal/domain/entity"
	"github.com/ardani17/barber-sub001/internal/domain/enum"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Barber{},
		&entity.Product{},
		&entity.Service{},
		&entity.Transaction{},
		&entity.TransactionItem{},
		&entity.AttendanceEvent{},
		&entity.Expense{},
		&entity.SalaryDebt{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// SeedOwner creates the initial owner account on an empty database. It is a
// no-op when any user exists or no seed credentials are configured.
func SeedOwner(db *gorm.DB, cfg *config.SeedConfig) error {
	if cfg.OwnerEmail == "" || cfg.OwnerPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := &entity.User{
		Name:     cfg.OwnerName,
		Email:    cfg.OwnerEmail,
		Password: string(hashed),
		Role:     enum.RoleOwner,
	}
	if err := db.Create(owner).Error; err != nil {
		return err
	}

	log.Info().Str("email", cfg.OwnerEmail).Msg("seeded owner account")
	return nil
}
