package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Shop      ShopConfig
	Seed      SeedConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Debug    bool
	Timezone string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests      int
	Duration      int
	LoginAttempts int
	LoginWindow   time.Duration
}

// ShopConfig holds barbershop business settings
type ShopConfig struct {
	AttendanceDefaultStatus string
	LowStockThreshold       int
	DashboardCacheTTL       time.Duration
}

// SeedConfig holds the initial owner account created on an empty database
type SeedConfig struct {
	OwnerName     string
	OwnerEmail    string
	OwnerPassword string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg(".env file not found, using environment variables")
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "barber-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "barber_pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("RATE_LIMIT_LOGIN_ATTEMPTS", 5)
	viper.SetDefault("RATE_LIMIT_LOGIN_WINDOW_SECONDS", 60)
	viper.SetDefault("ATTENDANCE_DEFAULT_STATUS", "HADIR")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("DASHBOARD_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("SEED_OWNER_NAME", "Owner")
	viper.SetDefault("SEED_OWNER_EMAIL", "")
	viper.SetDefault("SEED_OWNER_PASSWORD", "")

	return &Config{
		App: AppConfig{
			Name:     viper.GetString("APP_NAME"),
			Env:      viper.GetString("APP_ENV"),
			Port:     viper.GetString("APP_PORT"),
			Debug:    viper.GetBool("APP_DEBUG"),
			Timezone: viper.GetString("APP_TIMEZONE"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests:      viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration:      viper.GetInt("RATE_LIMIT_DURATION"),
			LoginAttempts: viper.GetInt("RATE_LIMIT_LOGIN_ATTEMPTS"),
			LoginWindow:   time.Duration(viper.GetInt("RATE_LIMIT_LOGIN_WINDOW_SECONDS")) * time.Second,
		},
		Shop: ShopConfig{
			AttendanceDefaultStatus: viper.GetString("ATTENDANCE_DEFAULT_STATUS"),
			LowStockThreshold:       viper.GetInt("LOW_STOCK_THRESHOLD"),
			DashboardCacheTTL:       time.Duration(viper.GetInt("DASHBOARD_CACHE_TTL_SECONDS")) * time.Second,
		},
		Seed: SeedConfig{
			OwnerName:     viper.GetString("SEED_OWNER_NAME"),
			OwnerEmail:    viper.GetString("SEED_OWNER_EMAIL"),
			OwnerPassword: viper.GetString("SEED_OWNER_PASSWORD"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
