package trip_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/internal/services"
)

var Module = fx.Provide(provideTripService, provideTripController)

func provideTripService(generator infra.TextGenerator, images infra.ImageSearcher) services.TripServiceInterface {
	return services.NewTripService(generator, images)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
