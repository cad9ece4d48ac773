package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/agrovista-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the explicit engine knobs. Each maps to an env
// variable so a site can tune rules without a rebuild.
type PayrollConfig struct {
	LateThreshold           string  // HH:MM, default 10:15
	LateDaysPerPenalty      int     // default 3
	LatePenaltyDays         float64 // default 0.5
	MonthlyLeaveEntitlement float64 // default 2
	AllowedLeaveDays        float64 // default 2 (display/preview variant)
	RequiredDaysDefault     int     // default 30
	RequiredDaysMode        string  // fixed | calendar
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "agrovista-hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Payroll engine configuration
	lateDaysPerPenalty, err := strconv.Atoi(getEnv("LATE_DAYS_PER_PENALTY", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_DAYS_PER_PENALTY: %w", err)
	}
	latePenaltyDays, err := strconv.ParseFloat(getEnv("LATE_PENALTY_DAYS", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_PENALTY_DAYS: %w", err)
	}
	monthlyEntitlement, err := strconv.ParseFloat(getEnv("MONTHLY_LEAVE_ENTITLEMENT", "2"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MONTHLY_LEAVE_ENTITLEMENT: %w", err)
	}
	allowedLeaveDays, err := strconv.ParseFloat(getEnv("ALLOWED_LEAVE_DAYS", "2"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ALLOWED_LEAVE_DAYS: %w", err)
	}
	requiredDaysDefault, err := strconv.Atoi(getEnv("REQUIRED_DAYS_DEFAULT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUIRED_DAYS_DEFAULT: %w", err)
	}

	config.Payroll = PayrollConfig{
		LateThreshold:           getEnv("LATE_THRESHOLD", "10:15"),
		LateDaysPerPenalty:      lateDaysPerPenalty,
		LatePenaltyDays:         latePenaltyDays,
		MonthlyLeaveEntitlement: monthlyEntitlement,
		AllowedLeaveDays:        allowedLeaveDays,
		RequiredDaysDefault:     requiredDaysDefault,
		RequiredDaysMode:        getEnv("REQUIRED_DAYS_MODE", "fixed"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, ok := validator.IsValidTimeOfDay(c.Payroll.LateThreshold); !ok {
		return fmt.Errorf("LATE_THRESHOLD must be HH:MM")
	}
	if c.Payroll.LateDaysPerPenalty <= 0 {
		return fmt.Errorf("LATE_DAYS_PER_PENALTY must be positive")
	}
	if c.Payroll.RequiredDaysDefault < 0 {
		return fmt.Errorf("REQUIRED_DAYS_DEFAULT must not be negative")
	}
	mode := payroll.RequiredDaysMode(c.Payroll.RequiredDaysMode)
	if mode != payroll.RequiredDaysFixed && mode != payroll.RequiredDaysCalendar {
		return fmt.Errorf("REQUIRED_DAYS_MODE must be 'fixed' or 'calendar'")
	}
	return nil
}

// PolicyFromConfig builds the engine policy out of the env knobs.
func (c *Config) PolicyFromConfig() payroll.Policy {
	policy := payroll.DefaultPolicy()
	if threshold, ok := validator.IsValidTimeOfDay(c.Payroll.LateThreshold); ok {
		policy.LateThresholdHour = threshold.Hour()
		policy.LateThresholdMinute = threshold.Minute()
	}
	policy.LateDaysPerPenalty = c.Payroll.LateDaysPerPenalty
	policy.LatePenaltyDays = c.Payroll.LatePenaltyDays
	policy.MonthlyLeaveEntitlement = c.Payroll.MonthlyLeaveEntitlement
	policy.AllowedLeaveDays = c.Payroll.AllowedLeaveDays
	policy.RequiredDaysDefault = c.Payroll.RequiredDaysDefault
	policy.RequiredDaysMode = payroll.RequiredDaysMode(c.Payroll.RequiredDaysMode)
	return policy
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
