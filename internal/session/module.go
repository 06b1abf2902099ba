package session

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/admart/backend/internal/config"
)

// Module wires the session revocation store. Redis is used when an address
// is configured, otherwise a process-local store keeps logouts working.
var Module = fx.Options(
	fx.Provide(newStore),
)

type storeParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newStore(p storeParams) (Store, error) {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("session store: in-memory")
		return NewMemoryStore(), nil
	}

	store, err := NewRedisStore(p.Ctx, p.Config.RedisAddress)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	p.Logger.Info("session store: redis", slog.String("addr", p.Config.RedisAddress))
	return store, nil
}
