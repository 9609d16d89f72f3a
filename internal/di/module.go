package di

import (
	"go.uber.org/fx"

	"github.com/garvbarthwal/kisaan/internal/app"
	"github.com/garvbarthwal/kisaan/internal/config"
	"github.com/garvbarthwal/kisaan/internal/logger"
	"github.com/garvbarthwal/kisaan/internal/notify"
	"github.com/garvbarthwal/kisaan/internal/pkg/auth"
	"github.com/garvbarthwal/kisaan/internal/server/http/router"
	"github.com/garvbarthwal/kisaan/internal/storage/postgres"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
