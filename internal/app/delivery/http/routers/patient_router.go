package routers

import (
	"dental-clinic-service/internal/app/delivery/http/controllers"
	"dental-clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.With(middlewares.Authenticate).Get("/{patientID}/tooth-conditions", patientController.GetToothConditions)
	router.With(middlewares.Authenticate, middlewares.RequireStaff).Put("/{patientID}/tooth-conditions", patientController.UpsertToothCondition)
}
