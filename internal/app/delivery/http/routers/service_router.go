package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, _ *middlewares.Middlewares, serviceController *controllers.ServiceController) {
	router.Get("/", serviceController.FindAll)
}
