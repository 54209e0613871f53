package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/server/http/handlers"
	"github.com/polkiloo/procurebot/internal/storage"
	"github.com/polkiloo/procurebot/internal/transport/telegram"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(provide)

type params struct {
	fx.In

	Config *config.Config
	Bot    *telegram.Bot
	Events *telegram.Dispatcher
	Ledger storage.Ledger
	Logger *slog.Logger
}

func provide(p params) *gin.Engine {
	webhook := telegram.WebhookHandler(p.Bot, p.Events, p.Config.BotToken, p.Logger)
	health := handlers.NewHealthHandler(p.Ledger)
	return Setup(webhook, health, p.Logger)
}
