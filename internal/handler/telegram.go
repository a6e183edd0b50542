// internal/handler/telegram.go
package handler

import (
	"cardhawk/internal/botcmd"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramWebhook answers updates pushed by Telegram. Send failures are logged, and
// Telegram always gets 200 so it does not redeliver.
func TelegramWebhook(bot *botcmd.Bot, api *tgbotapi.BotAPI) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Failed to parse telegram update", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}

		msg, ok := bot.Reply(c.Request.Context(), update)
		if ok {
			if _, err := api.Send(msg); err != nil {
				slog.Error("Failed to send telegram reply", "chat_id", msg.ChatID, "error", err)
			}
		}
		c.Status(http.StatusOK)
	}
}
