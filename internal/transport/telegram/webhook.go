package telegram

import (
	"context"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gin-gonic/gin"
)

// WebhookHandler accepts Bot API updates pushed by Telegram. The path
// token is compared against the bot token, the only secret Telegram and
// the bot share.
func WebhookHandler(bot *Bot, events *Dispatcher, token string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("token") != token {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			logger.Warn("malformed webhook update", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		if cb := update.CallbackQuery; cb != nil {
			bot.ackCallback(cb.ID)
		}

		ev, ok := eventFromUpdate(update)
		if ok {
			// Telegram retries on non-2xx, so the event is queued and the
			// request is acknowledged immediately.
			ctx := context.WithoutCancel(c.Request.Context())
			events.Dispatch(ctx, ev)
		}

		c.Status(http.StatusOK)
	}
}
