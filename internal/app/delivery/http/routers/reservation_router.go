package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, middlewares *middlewares.Middlewares, reservationController *controllers.ReservationController) {
	router.With(middlewares.Authenticate).Post("/reserve-appointment", reservationController.ReserveAppointment)
}
