package components

import (
	"log/slog"

	"hotel-ops/internal/infra/kvstore"
	"hotel-ops/internal/infra/seed"
	"hotel-ops/internal/pkg/config"

	"go.uber.org/fx"
)

// StartEmptyFlag carries the persisted start-empty choice into the guest and
// reservation repository constructors.
type StartEmptyFlag bool

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			NewFileStore,
			fx.As(new(kvstore.Store)),
		),
		seed.Load,
		NewStartEmptyFlag,
	),
)

func NewFileStore(cfg config.Config, logger *slog.Logger) (*kvstore.FileStore, error) {
	store, err := kvstore.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Info("file store initialized", slog.String("dir", cfg.Store.DataDir))
	return store, nil
}

func NewStartEmptyFlag(store kvstore.Store, logger *slog.Logger) StartEmptyFlag {
	return StartEmptyFlag(kvstore.StartEmpty(store, logger))
}
