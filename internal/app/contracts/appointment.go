package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"time"
)

type AppointmentUsecase interface {
	UpdateStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	FindUpcomingAppointment(ctx context.Context, sessionData string) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	// CreateAppointment performs the conditional insert: it returns
	// exceptions.ErrSlotAlreadyBooked when another non-cancelled
	// appointment already holds the same date and time.
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindBookedDatesInRange(ctx context.Context, from, to time.Time) ([]string, error)
	FindUnavailableSlotsByDate(ctx context.Context, date string) ([]string, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error
	FindUpcomingAppointmentByPatientID(ctx context.Context, patientID string) (*responses.Appointment, error)
	FindAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error)
}
