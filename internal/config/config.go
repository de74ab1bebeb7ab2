// Package config содержит логику чтения конфигурации кассовой системы.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации кассовой системы.
type Config struct {
	DataDir           string `env:"DATA_DIR"`
	LowStockThreshold int    `env:"LOW_STOCK_THRESHOLD"`
	ExpiryWindowDays  int    `env:"EXPIRY_WINDOW_DAYS"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envDataDir := cfg.DataDir
	envThreshold := cfg.LowStockThreshold
	envExpiryWindow := cfg.ExpiryWindowDays

	flag.StringVar(&cfg.DataDir, "d", "data", "directory for JSON data documents")
	flag.IntVar(&cfg.LowStockThreshold, "t", 5, "low stock warning threshold")
	flag.IntVar(&cfg.ExpiryWindowDays, "e", 30, "expiry report window in days")

	flag.Parse()

	if envDataDir != "" {
		cfg.DataDir = envDataDir
	}
	if envThreshold != 0 {
		cfg.LowStockThreshold = envThreshold
	}
	if envExpiryWindow != 0 {
		cfg.ExpiryWindowDays = envExpiryWindow
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}

	return cfg, nil
}
