package bootstrap

import (
	"booking-admission/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	EngineModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
