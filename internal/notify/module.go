package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/garvbarthwal/kisaan/internal/config"
	"github.com/garvbarthwal/kisaan/internal/domain/repository"
	"github.com/garvbarthwal/kisaan/internal/usecase"
)

// Module wires the notification dispatcher for fx runtime.
var Module = fx.Provide(
	newDispatcher,
	func(d *Dispatcher) usecase.Dispatcher { return d },
)

type dispatcherParams struct {
	fx.In

	Store  repository.NotificationRepository
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Store, p.Config.NotificationWorkers, p.Config.NotificationQueueSize, p.Logger)
}
