package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/conversation"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

// Module wires the admin notification pool and its lifecycle.
var Module = fx.Options(
	fx.Provide(newDispatcher),
	fx.Provide(func(d *Dispatcher) conversation.Notifier { return d }),
	fx.Invoke(registerLifecycle),
)

func newDispatcher(cfg *config.Config, sink chat.Sink, logger *slog.Logger) *Dispatcher {
	return NewDispatcher(sink, model.Identity(cfg.AdminChatID), cfg.NotifyWorkers, cfg.NotifyQueueSize, logger)
}

func registerLifecycle(lc fx.Lifecycle, ctx context.Context, d *Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			d.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			d.Stop()
			return nil
		},
	})
}
