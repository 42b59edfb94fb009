package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	// Currency code printed after every amount.
	Currency string

	// Logging. The TUI owns the terminal, so logs only go to a file.
	LogFile   string
	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and then the environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Currency:  getEnv("EXPENSES_CURRENCY", "PLN"),
		LogFile:   getEnv("EXPENSES_LOG_FILE", ""),
		LogLevel:  strings.ToLower(getEnv("EXPENSES_LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("EXPENSES_LOG_FORMAT", "json")),
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Currency) == "" {
		problems = append(problems, "currency cannot be blank")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "json" && c.LogFormat != "human" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be json or human", c.LogFormat))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}
