package di

import (
	"go.uber.org/fx"

	"github.com/craftlink/marketplace/internal/adapter/mailer"
	"github.com/craftlink/marketplace/internal/app"
	"github.com/craftlink/marketplace/internal/config"
	"github.com/craftlink/marketplace/internal/logger"
	"github.com/craftlink/marketplace/internal/server/http/handlers"
	"github.com/craftlink/marketplace/internal/server/http/router"
	"github.com/craftlink/marketplace/internal/storage/postgres"
	"github.com/craftlink/marketplace/internal/usecase"
	"github.com/craftlink/marketplace/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(d *worker.NotificationDispatcher) usecase.Notifier { return d }),
		fx.Provide(func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
