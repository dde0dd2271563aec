package pgstore

import (
	"context"

	"go.uber.org/fx"

	"github.com/docpipe/stores/v1/docstore"
	"github.com/docpipe/stores/v1/observability"
)

// FXModule is an fx.Module that provides and configures the PostgreSQL
// document store. It registers the store with the Fx dependency injection
// framework, making it available both as the concrete *Store and as the
// docstore.Store interface.
var FXModule = fx.Module("pgstore",
	fx.Provide(
		NewStoreWithDI,
		func(s *Store) docstore.Store { return s },
	),
	fx.Invoke(RegisterStoreLifecycle),
)

// StoreParams groups the dependencies needed to create a PostgreSQL store.
type StoreParams struct {
	fx.In

	Config   *Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewStoreWithDI creates a new PostgreSQL store using dependency
// injection. The logger and observer are optional; when absent the store
// runs silent and unobserved.
func NewStoreWithDI(params StoreParams) (*Store, error) {
	store, err := NewStore(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		store.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		store.WithObserver(params.Observer)
	}
	return store, nil
}

// RegisterStoreLifecycle wires the store into the fx lifecycle: a health
// probe on start and a clean release on stop.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.healthCheck(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
