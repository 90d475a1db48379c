package appointments

import (
	"context"
	"fmt"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	ServiceRepository     contracts.ServiceRepository
	BookingEventPublisher contracts.BookingEventPublisher
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	serviceRepository contracts.ServiceRepository,
	bookingEventPublisher contracts.BookingEventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			PatientRepository:     patientRepository,
			ServiceRepository:     serviceRepository,
			BookingEventPublisher: bookingEventPublisher,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// UpdateStatus moves an appointment through its lifecycle. Only staff may
// call it, and only transitions allowed by the state machine go through.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("target_status", request.Status),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsStaffRole() {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentRepository.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(request.Status) {
		return nil, exceptions.ErrInvalidStatusTransition(
			fmt.Errorf("cannot transition from %s to %s", appointment.Status, request.Status),
		)
	}

	if err := uc.AppointmentRepository.UpdateAppointmentStatus(ctx, appointmentID, request.Status); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, appointment.PatientID)
	if err != nil {
		return nil, err
	}

	serviceName := ""
	if service, err := uc.ServiceRepository.FindServiceByID(ctx, appointment.ServiceID); err == nil {
		serviceName = service.Name
	}

	event := &contracts.BookingEvent{
		Type:            request.Status,
		AppointmentID:   appointmentID,
		PatientID:       appointment.PatientID,
		PatientUserID:   patient.UserID,
		ServiceName:     serviceName,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
	}
	if err := uc.BookingEventPublisher.PublishBookingEvent(ctx, event); err != nil {
		uc.Log.Warn("failed to publish status change event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &responses.Appointment{
		ID:              appointmentID,
		PatientID:       appointment.PatientID,
		ServiceID:       appointment.ServiceID,
		ServiceName:     serviceName,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Status:          request.Status,
	}, nil
}

// FindUpcomingAppointment returns the caller's next non-cancelled
// appointment, or nil data when there is none.
func (uc *appointmentUsecase) FindUpcomingAppointment(ctx context.Context, sessionData string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindUpcomingAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.PatientID == "" {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	appointment, err := uc.AppointmentRepository.FindUpcomingAppointmentByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindUpcomingAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("has_upcoming", appointment != nil),
	)
	return appointment, nil
}
