package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketplace/internal/common/config"
	"marketplace/internal/common/logging"
	"marketplace/internal/marketplace/repository"
	"marketplace/internal/marketplace/seed"
	"marketplace/internal/marketplace/server"

	"github.com/gofiber/fiber/v3"
	log "github.com/sirupsen/logrus"
)

// ============================================================
// Marketplace Service
// ============================================================

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.Environment)

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := repository.New(db)
	if err := repo.Init(ctx); err != nil {
		logger.Fatalf("init db: %v", err)
	}

	if cfg.Seed {
		res, loaded, err := seed.LoadIfEmpty(ctx, repo, seed.Fixtures())
		if err != nil {
			logger.Fatalf("seed db: %v", err)
		}
		if loaded {
			logger.WithFields(log.Fields{
				"users":  res.Users,
				"orders": res.Orders,
				"offers": res.Offers,
			}).Info("fixtures loaded")
		}
	}

	app := server.New(cfg, repo, logger)
	handleSignals(app, logger)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Infof("Starting Marketplace on %s (env: %s, db: %s)", addr, cfg.Environment, cfg.DBPath)

	if err := app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
	logger.Info("Marketplace stopped")
}

func handleSignals(app *fiber.App, logger *log.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Warnf("received %s, shutting down", sig)
		if err := app.Shutdown(); err != nil {
			logger.Errorf("shutdown: %v", err)
		}
	}()
}
