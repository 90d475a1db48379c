package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, invoiceController *controllers.InvoiceController) {
	router.With(middlewares.Authenticate, middlewares.RequireStaff).Get("/", invoiceController.FindAllSales)
}
