package components

import (
	"booking-admission/internal/engine"
	"booking-admission/internal/infra/pgstore"
	"booking-admission/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Concrete resource store is also needed for index warm-start.
		pgstore.NewResourceStore,
		fx.Annotate(
			pgstore.NewResourceStore,
			fx.As(new(engine.ResourceRepository)),
		),
		fx.Annotate(
			pgstore.NewRuleStore,
			fx.As(new(engine.RuleRepository)),
		),
		fx.Annotate(
			pgstore.NewReservationStore,
			fx.As(new(engine.ReservationRepository)),
			fx.As(new(engine.ReservationSink)),
			fx.As(new(usecase.ReservationStatusWriter)),
		),
	),
)
