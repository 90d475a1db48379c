package reservations

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const dayLockExpiration = 10 * time.Second

type reservationUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ServiceRepository     contracts.ServiceRepository
	LockerService         contracts.LockerService
	BookingEventPublisher contracts.BookingEventPublisher
	Log                   *zap.Logger
}

var (
	reservationUsecaseInstance contracts.ReservationUsecase
	onceReservationUsecase     sync.Once
)

func NewReservationUsecase(
	appointmentRepository contracts.AppointmentRepository,
	serviceRepository contracts.ServiceRepository,
	lockerService contracts.LockerService,
	bookingEventPublisher contracts.BookingEventPublisher,
	logger *zap.Logger,
) contracts.ReservationUsecase {
	onceReservationUsecase.Do(func() {
		reservationUsecaseInstance = &reservationUsecase{
			AppointmentRepository: appointmentRepository,
			ServiceRepository:     serviceRepository,
			LockerService:         lockerService,
			BookingEventPublisher: bookingEventPublisher,
			Log:                   logger,
		}
	})
	return reservationUsecaseInstance
}

// ReserveAppointment books one grid slot for the calling patient. A per-day
// Redis lock serializes bookings for the same date, and the insert itself is
// guarded by the active-slot unique index, so two racing requests for one
// slot cannot both succeed.
func (uc *reservationUsecase) ReserveAppointment(ctx context.Context, sessionData string, request *requests.ReserveAppointment) (*responses.CreateReservation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reservationUsecase.ReserveAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDateKey, request.AppointmentDate),
		zap.String(constvars.LoggingAppointmentTimeKey, request.AppointmentTime),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}
	if session.PatientID == "" {
		return nil, exceptions.ErrNotAuthorized(nil)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointmentDate, err := utils.ParseAppointmentDate(request.AppointmentDate)
	if err != nil {
		return nil, err
	}
	if appointmentDate.Before(utils.StartOfToday()) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("appointment date %s is in the past", request.AppointmentDate))
	}

	service, err := uc.ServiceRepository.FindServiceByID(ctx, request.ServiceID)
	if err != nil {
		return nil, err
	}
	if service.Status != constvars.ServiceStatusActive {
		return nil, exceptions.ErrServiceNotAvailable(fmt.Errorf("service %d is %s", service.ID, service.Status))
	}

	lockKey := fmt.Sprintf(constvars.RedisReservationDayLockKey, request.AppointmentDate)
	acquired, lockToken, err := uc.LockerService.TryLock(ctx, lockKey, dayLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrReservationDayLock(fmt.Errorf("day lock busy for %s", request.AppointmentDate))
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockToken); err != nil {
			uc.Log.Warn("failed to release reservation day lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	appointment := &models.Appointment{
		PatientID:       session.PatientID,
		ServiceID:       request.ServiceID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
		Status:          constvars.AppointmentStatusPending,
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	event := &contracts.BookingEvent{
		Type:            constvars.NotificationTypeNewBookingRequest,
		AppointmentID:   appointmentID,
		PatientID:       session.PatientID,
		PatientUserID:   session.UserID,
		PatientName:     session.FirstName + " " + session.LastName,
		ServiceName:     service.Name,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: request.AppointmentTime,
	}
	// The reservation stands even if the event cannot be published; staff
	// simply miss the push notification for it.
	if err := uc.BookingEventPublisher.PublishBookingEvent(ctx, event); err != nil {
		uc.Log.Warn("failed to publish booking event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	uc.Log.Info("reservationUsecase.ReserveAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &responses.CreateReservation{
		Appointment: responses.Appointment{
			ID:              appointmentID,
			PatientID:       session.PatientID,
			ServiceID:       request.ServiceID,
			ServiceName:     service.Name,
			AppointmentDate: request.AppointmentDate,
			AppointmentTime: request.AppointmentTime,
			Status:          constvars.AppointmentStatusPending,
		},
	}, nil
}
