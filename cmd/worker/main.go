package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unibot/config"
	waDelivery "unibot/internal/chat/delivery/whatsapp"
	"unibot/internal/chat/repository/memory"
	"unibot/internal/chat/repository/webapi"
	chatUsecase "unibot/internal/chat/usecase"
	"unibot/internal/httpserver"
	"unibot/internal/intent"
	"unibot/internal/middleware"
	"unibot/pkg/log"
	"unibot/pkg/wagateway"
)

// @title       Unibot Worker
// @description Chat side of the class assistant: receives WhatsApp webhooks, classifies intents, and sends replies through the gateway.
// @version     1
// @host        localhost:8081
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

	logger.Info(ctx, "Starting Unibot worker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Dashboard URL: %s", cfg.Internal.BaseURL)

	if cfg.Bot.JID == "" {
		logger.Warn(ctx, "bot.jid is empty, every webhook will be ignored")
	}
	if cfg.Internal.Secret == "" {
		logger.Warn(ctx, "internal.secret is empty, dashboard replies will fail closed")
	}

	// 3. Gateway client
	gateway := wagateway.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.Token)

	// 4. Chat domain
	replyRepo := webapi.New(
		logger,
		cfg.Internal.BaseURL,
		cfg.Internal.Secret,
		time.Duration(cfg.Internal.TimeoutSeconds)*time.Second,
	)
	registry := memory.NewRegistry()
	chatUC := chatUsecase.New(logger, replyRepo, registry, cfg.Bot.Name, cfg.Bot.WebURL)

	detector := intent.NewDetector(intent.DefaultTable())

	whatsappHandler := waDelivery.New(logger, chatUC, detector, gateway, waDelivery.Config{
		BotJID:        cfg.Bot.JID,
		RatePerMinute: cfg.RateLimit.PerMinute,
		RateBurst:     cfg.RateLimit.Burst,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, "", ""),
		WhatsAppHandler: whatsappHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Worker stopped gracefully")
}
