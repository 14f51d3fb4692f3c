package components

import (
	"booking-admission/internal/pkg/clock"
	"booking-admission/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAdmissionUseCase,
	),
)
