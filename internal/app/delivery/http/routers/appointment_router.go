package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/upcoming", appointmentController.FindUpcoming)
	router.With(middlewares.Authenticate, middlewares.RequireStaff).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
