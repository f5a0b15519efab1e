package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"rental-budget/service"
)

type Config struct {
	Port              string
	RedisAddr         string
	CacheTTL          time.Duration
	ContractTerms     service.ContractTerms
	RateLimitCapacity int
	RateLimitRefill   time.Duration
}

// Load reads .env (if present) and the environment. Unset variables fall
// back to the defaults below.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		ContractTerms:     service.DefaultContractTerms(),
		RateLimitCapacity: 5,
		RateLimitRefill:   time.Minute,
		CacheTTL:          24 * time.Hour,
	}

	var err error
	if v := os.Getenv("CONTRACT_FEE"); v != "" {
		if cfg.ContractTerms.Fee, err = decimal.NewFromString(v); err != nil {
			return nil, fmt.Errorf("CONTRACT_FEE: %w", err)
		}
	}
	if v := os.Getenv("AMORTIZATION_WINDOW"); v != "" {
		if cfg.ContractTerms.AmortizationWindow, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("AMORTIZATION_WINDOW: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_CAPACITY"); v != "" {
		if cfg.RateLimitCapacity, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_CAPACITY: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_REFILL"); v != "" {
		if cfg.RateLimitRefill, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_REFILL: %w", err)
		}
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if cfg.CacheTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("CACHE_TTL: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := service.ValidateContractTerms(c.ContractTerms); err != nil {
		return err
	}
	if c.RateLimitCapacity <= 0 {
		return &service.ConfigurationError{Setting: "RATE_LIMIT_CAPACITY", Reason: "must be positive"}
	}
	if c.RateLimitRefill <= 0 {
		return &service.ConfigurationError{Setting: "RATE_LIMIT_REFILL", Reason: "must be positive"}
	}
	if c.CacheTTL < 0 {
		return &service.ConfigurationError{Setting: "CACHE_TTL", Reason: "must not be negative"}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
