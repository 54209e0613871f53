package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(store repository.RowStore, counter repository.OrderCounter, cfg *config.Config) *LedgerUseCase {
		return NewLedgerUseCase(store, counter, cfg.CostCenters)
	},
)
