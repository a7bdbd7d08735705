package config

import (
	"fmt"
	"os"
	"strconv"

	"rechnungskern/internal/logger"
)

type Config struct {
	// Company profile used when building invoices
	CompanyName string

	// Invoice numbering
	SequenceDBPath string

	// VAT rates (percent)
	DefaultVATRate float64
	ReducedVATRate float64

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		CompanyName:    getEnv("COMPANY_NAME", ""),
		SequenceDBPath: getEnv("SEQUENCE_DB_PATH", "data/sequences.db"),
		DefaultVATRate: getEnvFloat("DEFAULT_VAT_RATE", 19),
		ReducedVATRate: getEnvFloat("REDUCED_VAT_RATE", 7),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.SequenceDBPath == "" {
		return fmt.Errorf("SEQUENCE_DB_PATH must not be empty")
	}
	if c.DefaultVATRate < 0 || c.DefaultVATRate > 100 {
		return fmt.Errorf("DEFAULT_VAT_RATE out of range: %v", c.DefaultVATRate)
	}
	if c.ReducedVATRate < 0 || c.ReducedVATRate > c.DefaultVATRate {
		return fmt.Errorf("REDUCED_VAT_RATE out of range: %v", c.ReducedVATRate)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
