package components

import (
	"booking-admission/internal/handler"
	"booking-admission/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAdmissionHandler,
	),
	fx.Invoke(handler.NewRouter),
)
