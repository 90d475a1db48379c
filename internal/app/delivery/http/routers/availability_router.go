package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Availability is public: the booking page shows the calendar before the
// visitor has an account.
func attachAvailabilityRoutes(router chi.Router, _ *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Get("/booked-dates", availabilityController.GetBookedDates)
	router.Get("/unavailable-slots", availabilityController.GetUnavailableSlots)
}
