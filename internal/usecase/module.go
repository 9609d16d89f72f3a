package usecase

import (
	"go.uber.org/fx"

	"github.com/garvbarthwal/kisaan/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewProductUseCase,
		NewStockLedger,
		NewOrderUseCase,
		NewNotificationUseCase,
	),
	fx.Provide(func(cfg *config.Config) CancellationPolicy {
		return NewCancellationPolicy(cfg.CancellationWindow)
	}),
)
