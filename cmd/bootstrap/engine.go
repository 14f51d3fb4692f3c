package bootstrap

import (
	"context"
	"log/slog"

	"booking-admission/internal/engine"
	"booking-admission/internal/infra/pgstore"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/metrics"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		NewEngine,
		NewMetrics,
	),
	fx.Invoke(warmStartIndex),
)

func NewEngine(
	cfg config.Config,
	resources engine.ResourceRepository,
	rules engine.RuleRepository,
	reservations engine.ReservationRepository,
	sink engine.ReservationSink,
	logger *slog.Logger,
) (*engine.Engine, error) {
	return engine.New(cfg.Engine, resources, rules, reservations, sink, logger)
}

func NewMetrics(cfg config.Config, eng *engine.Engine) *metrics.Metrics {
	return metrics.New(cfg.Metrics.ServiceName, eng.Index().Size)
}

// warmStartIndex primes the conflict index from the authoritative store before
// the server accepts traffic, so the first admission sees real occupancy.
func warmStartIndex(lc fx.Lifecycle, eng *engine.Engine, resources *pgstore.ResourceStore) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ids, err := resources.ListIDs(ctx)
			if err != nil {
				return err
			}
			return eng.WarmStart(ctx, ids...)
		},
	})
}
