package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/domain/repository"
	"github.com/polkiloo/procurebot/internal/storage/postgres"
	"github.com/polkiloo/procurebot/internal/storage/sheets"
)

// Ledger combines row access with a reachability probe for /healthz.
type Ledger interface {
	repository.RowStore
	HealthCheck(ctx context.Context) error
}

// Module selects and wires the configured ledger backend.
var Module = fx.Options(
	fx.Provide(newLedger),
	fx.Provide(func(l Ledger) repository.RowStore { return l }),
)

type ledgerParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newLedger(p ledgerParams) (Ledger, error) {
	switch p.Config.LedgerBackend {
	case config.BackendPostgres:
		store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				store.Close()
				return nil
			},
		})
		return store, nil
	case config.BackendSheets:
		return sheets.New(p.Ctx, sheets.Options{
			SpreadsheetID:   p.Config.SheetID,
			SheetName:       p.Config.SheetName,
			CredentialsFile: p.Config.GoogleCredentialsFile,
			CredentialsJSON: p.Config.GoogleCredentialsJSON,
		}, p.Logger)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", p.Config.LedgerBackend)
	}
}
