package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Payroll    PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
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

// AttendanceConfig holds the workday time windows. Values are wall-clock
// times in "HH:MM" format, interpreted in the server's local time.
type AttendanceConfig struct {
	CheckInOpens  string // check-in allowed from this time
	CheckInCloses string // check-in refused after this time
	OfficialStart string // check-in after this time counts as a late arrival
	CheckOutOpens string // manual check-out allowed from this time
	OfficeClose   string // auto-checkout sweep cutoff
	RequiredHours decimal.Decimal
	HalfDayHours  decimal.Decimal
	SweepInterval string // how often the auto-checkout job wakes up
}

// PayrollConfig holds the deduction constants.
type PayrollConfig struct {
	WorkingDayDivisor decimal.Decimal // daily rate = base salary / divisor
	LatePenaltyRate   decimal.Decimal // fraction of daily rate per late arrival
	PFRate            decimal.Decimal // provident fund, fraction of base salary
	ProfessionalTax   decimal.Decimal // flat amount per month
}

func Load() (*Config, error) {
	// A missing .env file is fine; env vars take over.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
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
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Attendance window configuration
	requiredHours, err := parseDecimalEnv("ATTENDANCE_REQUIRED_HOURS", "8.0")
	if err != nil {
		return nil, err
	}
	halfDayHours, err := parseDecimalEnv("ATTENDANCE_HALF_DAY_HOURS", "4.0")
	if err != nil {
		return nil, err
	}

	config.Attendance = AttendanceConfig{
		CheckInOpens:  getEnv("ATTENDANCE_CHECK_IN_OPENS", "10:00"),
		CheckInCloses: getEnv("ATTENDANCE_CHECK_IN_CLOSES", "10:50"),
		OfficialStart: getEnv("ATTENDANCE_OFFICIAL_START", "10:45"),
		CheckOutOpens: getEnv("ATTENDANCE_CHECK_OUT_OPENS", "18:20"),
		OfficeClose:   getEnv("ATTENDANCE_OFFICE_CLOSE", "18:30"),
		RequiredHours: requiredHours,
		HalfDayHours:  halfDayHours,
		SweepInterval: getEnv("ATTENDANCE_SWEEP_INTERVAL", "5m"),
	}

	// Payroll configuration
	divisor, err := parseDecimalEnv("PAYROLL_WORKING_DAY_DIVISOR", "26")
	if err != nil {
		return nil, err
	}
	latePenalty, err := parseDecimalEnv("PAYROLL_LATE_PENALTY_RATE", "0.10")
	if err != nil {
		return nil, err
	}
	pfRate, err := parseDecimalEnv("PAYROLL_PF_RATE", "0.12")
	if err != nil {
		return nil, err
	}
	profTax, err := parseDecimalEnv("PAYROLL_PROFESSIONAL_TAX", "200")
	if err != nil {
		return nil, err
	}

	config.Payroll = PayrollConfig{
		WorkingDayDivisor: divisor,
		LatePenaltyRate:   latePenalty,
		PFRate:            pfRate,
		ProfessionalTax:   profTax,
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
	if c.Database.MaxConns < 1 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS/DB_MAX_CONNS must satisfy 0 <= min <= max with max >= 1")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if !c.Payroll.WorkingDayDivisor.IsPositive() {
		return fmt.Errorf("PAYROLL_WORKING_DAY_DIVISOR must be positive")
	}
	if !c.Attendance.RequiredHours.IsPositive() {
		return fmt.Errorf("ATTENDANCE_REQUIRED_HOURS must be positive")
	}
	if c.Attendance.HalfDayHours.GreaterThan(c.Attendance.RequiredHours) {
		return fmt.Errorf("ATTENDANCE_HALF_DAY_HOURS must not exceed ATTENDANCE_REQUIRED_HOURS")
	}
	return nil
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

func parseDecimalEnv(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
