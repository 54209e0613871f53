package telegram

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/conversation"
)

// Module wires the Telegram transport: the outbound sink and the
// per-identity dispatcher always, the long-poll receiver only when
// polling mode is configured.
var Module = fx.Options(
	fx.Provide(
		func(cfg *config.Config) (*Bot, error) { return Dial(cfg.BotToken) },
		func(b *Bot) chat.Sink { return b },
		func(engine *conversation.Engine, logger *slog.Logger) *Dispatcher {
			return NewDispatcher(engine, logger)
		},
		func(b *Bot, events *Dispatcher, logger *slog.Logger) *Poller {
			return NewPoller(b, events, logger)
		},
	),
	fx.Invoke(registerTransport),
)

type transportParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Lifecycle fx.Lifecycle
	Poller    *Poller
	Events    *Dispatcher
	Logger    *slog.Logger
}

func registerTransport(p transportParams) {
	if p.Config.TransportMode != config.TransportPolling {
		// Webhook mode: the router owns intake, but queued events still
		// have to finish before shutdown.
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				p.Events.Wait()
				return nil
			},
		})
		return
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			p.Logger.Info("starting long-poll receiver")
			p.Poller.Start(p.Ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			p.Poller.Stop()
			return nil
		},
	})
}
