package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/cli"
	"github.com/mmeshcher/pos-system/internal/config"
	"github.com/mmeshcher/pos-system/internal/service"
	"github.com/mmeshcher/pos-system/internal/storage"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("config parse failed", "error", err)
	}

	store := storage.NewJSONStorage(cfg.DataDir, logger)

	auth := service.NewAuth(store, logger)
	catalog := service.NewCatalog(store, cfg.LowStockThreshold, logger)
	ledger := service.NewLedger(store, logger)
	billing := service.NewBilling(catalog, ledger, logger)

	sugar.Infow("starting point of sale",
		"data_dir", cfg.DataDir,
		"low_stock_threshold", cfg.LowStockThreshold,
		"expiry_window_days", cfg.ExpiryWindowDays,
	)

	shell := cli.NewShell(auth, catalog, ledger, billing, cfg.ExpiryWindowDays, os.Stdin, os.Stdout, logger)
	if err := shell.Run(); err != nil {
		sugar.Fatalw("shell terminated", "error", err)
	}
}
