package conversation

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/config"
)

// Module wires the conversation engine into the fx container.
var Module = fx.Provide(
	func(facade Facade, sink chat.Sink, notifier Notifier, cfg *config.Config, logger *slog.Logger) *Engine {
		return NewEngine(facade, sink, notifier, cfg.CostCenters, logger)
	},
)
