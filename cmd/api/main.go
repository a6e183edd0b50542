// cmd/api/main.go
package main

import (
	"cardhawk/internal/auth"
	"cardhawk/internal/botcmd"
	"cardhawk/internal/catalog"
	"cardhawk/internal/config"
	"cardhawk/internal/handler"
	"cardhawk/internal/rotating"
	"cardhawk/internal/service"
	"cardhawk/internal/storage"
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(config.NewLogger(cfg.LogLevel))

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load card catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Card catalog loaded", "cards", cat.Len())

	store, closeStore, err := storage.Open(context.Background(), cfg.Storage, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open storage", "backend", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	advisor := service.NewAdvisor(cat, store, rotating.DefaultSchedule)
	tokens := auth.NewTokenService(cfg)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.New(advisor, cfg.DefaultAmount), tokens)

	// Telegram can push updates here instead of cmd/bot polling for them.
	if cfg.BotToken != "" && cfg.WebhookURL != "" {
		api, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			slog.Error("Failed to init telegram bot", "error", err)
			os.Exit(1)
		}
		webhookURL := strings.TrimSuffix(cfg.WebhookURL, "/") + "/telegram"
		if _, err := api.MakeRequest("setWebhook", tgbotapi.Params{"url": webhookURL}); err != nil {
			slog.Error("Failed to set telegram webhook", "error", err)
			os.Exit(1)
		}
		router.POST("/telegram", handler.TelegramWebhook(botcmd.New(advisor, cfg.DefaultAmount), api))
		slog.Info("Telegram webhook set", "url", webhookURL)
	}

	slog.Info("Server started", "port", cfg.ServerPort, "storage", cfg.Storage)
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
