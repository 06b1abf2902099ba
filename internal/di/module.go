package di

import (
	"go.uber.org/fx"

	"github.com/admart/backend/internal/app"
	"github.com/admart/backend/internal/config"
	"github.com/admart/backend/internal/logger"
	"github.com/admart/backend/internal/pkg/auth"
	"github.com/admart/backend/internal/server/http/handlers"
	"github.com/admart/backend/internal/server/http/router"
	"github.com/admart/backend/internal/session"
	"github.com/admart/backend/internal/storage/postgres"
	"github.com/admart/backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		session.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.CommerceFacade) handlers.CommerceFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
