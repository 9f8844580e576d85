package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"unibot/config"
	classDelivery "unibot/internal/class/delivery/http"
	"unibot/internal/class/repository/postgre"
	classUsecase "unibot/internal/class/usecase"
	"unibot/internal/httpserver"
	"unibot/internal/middleware"
	"unibot/internal/reminder"
	wareplyDelivery "unibot/internal/wareply/delivery/http"
	wareplyUsecase "unibot/internal/wareply/usecase"
	"unibot/pkg/datemath"
	"unibot/pkg/log"
	"unibot/pkg/wagateway"
)

// @title       Unibot Dashboard API
// @description Class assistant dashboard: classes, schedules, assignments, work groups, and the internal WhatsApp reply endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Unibot dashboard API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Datastore
	if cfg.Postgres.DSN == "" {
		logger.Error(ctx, "postgres.dsn is required")
		return
	}
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping database: ", err)
		return
	}
	logger.Info(ctx, "✅ Postgres connected")

	repo := postgre.New(db, logger)

	// 4. Date parser
	dates, err := datemath.NewParser(cfg.Bot.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Bot.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Domains
	classUC := classUsecase.New(logger, repo)
	classHandler := classDelivery.New(logger, classUC)

	wareplyUC := wareplyUsecase.New(logger, repo, dates)
	wareplyHandler := wareplyDelivery.New(logger, wareplyUC)

	mw := middleware.New(logger, cfg.Admin.Token, cfg.Internal.Secret)

	// 6. Reminder dispatcher (optional)
	if cfg.Reminder.Enabled {
		if cfg.Gateway.BaseURL == "" {
			logger.Warn(ctx, "Reminders enabled but gateway.base_url is empty, skipping dispatcher")
		} else {
			gateway := wagateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Token)
			dispatcher := reminder.New(logger, repo, gateway, dates, cfg.Reminder.Cron)
			if err := dispatcher.Start(); err != nil {
				logger.Errorf(ctx, "Failed to start reminder dispatcher: %v", err)
				return
			}
			defer dispatcher.Stop()
			logger.Infof(ctx, "✅ Reminder dispatcher running (%s)", cfg.Reminder.Cron)
		}
	} else {
		logger.Info(ctx, "Reminder dispatcher disabled")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		ClassHandler:   classHandler,
		WAReplyHandler: wareplyHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
