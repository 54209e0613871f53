package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/procurebot/internal/app"
	"github.com/polkiloo/procurebot/internal/config"
	"github.com/polkiloo/procurebot/internal/conversation"
	counter "github.com/polkiloo/procurebot/internal/counter/redis"
	"github.com/polkiloo/procurebot/internal/logger"
	"github.com/polkiloo/procurebot/internal/notify"
	"github.com/polkiloo/procurebot/internal/server/http/router"
	"github.com/polkiloo/procurebot/internal/storage"
	"github.com/polkiloo/procurebot/internal/transport/telegram"
	"github.com/polkiloo/procurebot/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		counter.Module,
		usecase.Module,
		fx.Provide(func(f *app.ProcurementFacade) conversation.Facade { return f }),
		conversation.Module,
		telegram.Module,
		notify.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
