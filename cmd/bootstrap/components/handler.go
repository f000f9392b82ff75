package components

import (
	"bookwise/internal/handler"
	"bookwise/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewAppointmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
