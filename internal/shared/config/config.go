package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type PayrollConfig struct {
	// DefaultTaxRate applies to profiles without their own tax_rate.
	DefaultTaxRate decimal.Decimal
	EligibleRoles  []string
	TxTimeout      time.Duration
}

type MessagingConfig struct {
	Broker             string
	OutboxPollInterval time.Duration
	HistoryGroupID     string
}

type Config struct {
	Port          string
	Database      DatabaseConfig
	RedisAddr     string
	KafkaBroker   string
	Messaging     MessagingConfig
	JWTSecret     string
	RBACModelPath string
	Payroll       PayrollConfig
}

const (
	defaultTaxRate       = "0.20"
	defaultEligibleRoles = "teacher,staff"
	defaultTxTimeout     = 30 * time.Second
	defaultPollInterval  = 3 * time.Second
	defaultHistoryGroup  = "school-erp-payroll-history"
)

// Load reads the process environment. Call godotenv.Load before it so a local
// .env file is honoured.
func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3000"),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RBACModelPath: os.Getenv("RBAC_MODEL_PATH"),
	}

	payroll, err := loadPayroll()
	if err != nil {
		return Config{}, err
	}
	cfg.Payroll = payroll

	poll, err := durationEnv("OUTBOX_POLL_INTERVAL", defaultPollInterval)
	if err != nil {
		return Config{}, err
	}
	cfg.Messaging = MessagingConfig{
		Broker:             cfg.KafkaBroker,
		OutboxPollInterval: poll,
		HistoryGroupID:     getEnv("KAFKA_HISTORY_GROUP_ID", defaultHistoryGroup),
	}

	return cfg, nil
}

// RequireBroker fails fast for processes that cannot run without kafka.
func (c Config) RequireBroker() error {
	if c.Messaging.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func loadPayroll() (PayrollConfig, error) {
	rate, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_TAX_RATE", defaultTaxRate))
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("PAYROLL_DEFAULT_TAX_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return PayrollConfig{}, fmt.Errorf("PAYROLL_DEFAULT_TAX_RATE must be within [0, 1], got %s", rate)
	}

	timeout, err := durationEnv("PAYROLL_TX_TIMEOUT", defaultTxTimeout)
	if err != nil {
		return PayrollConfig{}, err
	}

	return PayrollConfig{
		DefaultTaxRate: rate,
		EligibleRoles:  splitList(getEnv("PAYROLL_ELIGIBLE_ROLES", defaultEligibleRoles)),
		TxTimeout:      timeout,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return d, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
