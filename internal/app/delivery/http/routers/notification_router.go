package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.With(middlewares.Authenticate).Get("/", notificationController.FindAll)
	router.With(middlewares.Authenticate).Patch("/{notificationID}/read", notificationController.MarkAsRead)
}
