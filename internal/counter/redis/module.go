package redis

import (
	"context"
	"log/slog"

	rd "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/domain/repository"
)

// Module wires the Redis-backed order counter.
var Module = fx.Options(
	fx.Provide(newClient, newCounter),
	fx.Provide(func(c *Counter) repository.OrderCounter { return c }),
	fx.Invoke(registerSeed),
)

func newClient(cfg *config.Config, lc fx.Lifecycle) *rd.Client {
	client := rd.NewClient(&rd.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client
}

func newCounter(client *rd.Client, cfg *config.Config) *Counter {
	return New(client, cfg.CounterKey)
}

type seedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Counter   *Counter
	Store     repository.RowStore
	Logger    *slog.Logger
}

// registerSeed seeds the counter from the current ledger size on startup,
// before any update is processed.
func registerSeed(p seedParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			rows, err := p.Store.ReadAll(ctx)
			if err != nil {
				return err
			}
			last := len(rows)
			if last >= model.HeaderRow {
				last-- // header does not consume a number
			}
			if err := p.Counter.Seed(ctx, last); err != nil {
				return err
			}
			p.Logger.Info("order counter ready", slog.Int("last_assigned", last))
			return nil
		},
	})
}
