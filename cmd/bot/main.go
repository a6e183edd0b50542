// cmd/bot/main.go
package main

import (
	"cardhawk/internal/botcmd"
	"cardhawk/internal/catalog"
	"cardhawk/internal/config"
	"cardhawk/internal/rotating"
	"cardhawk/internal/service"
	"cardhawk/internal/storage"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(config.NewLogger(cfg.LogLevel))

	if cfg.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load card catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	store, closeStore, err := storage.Open(ctx, cfg.Storage, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open storage", "backend", cfg.Storage, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	bot := botcmd.New(service.NewAdvisor(cat, store, rotating.DefaultSchedule), cfg.DefaultAmount)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		slog.Error("Failed to init telegram bot", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot started", "username", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			slog.Info("Bot stopped")
			return
		case update := <-updates:
			msg, ok := bot.Reply(ctx, update)
			if !ok {
				continue
			}
			if _, err := api.Send(msg); err != nil {
				slog.Error("Failed to send reply", "chat_id", msg.ChatID, "error", err)
			}
		}
	}
}
