package bootstrap

import (
	"hotel-ops/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
