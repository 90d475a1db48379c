package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.With(middlewares.Authenticate, middlewares.RequireStaff).Get("/", staffController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireStaff).Post("/", staffController.Create)
}
