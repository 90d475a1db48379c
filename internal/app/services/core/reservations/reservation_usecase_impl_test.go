package reservations

import (
	"context"
	"testing"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	createdAppointment *models.Appointment
	createErr          error
}

func (f *fakeAppointmentRepository) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.createdAppointment = appointment
	return "appointment-1", nil
}

func (f *fakeAppointmentRepository) FindBookedDatesInRange(context.Context, time.Time, time.Time) ([]string, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) FindUnavailableSlotsByDate(context.Context, string) ([]string, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) FindAppointmentByID(context.Context, string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) UpdateAppointmentStatus(context.Context, string, string) error {
	return nil
}

func (f *fakeAppointmentRepository) FindUpcomingAppointmentByPatientID(context.Context, string) (*responses.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepository) FindAppointmentsByDate(context.Context, string) ([]models.Appointment, error) {
	return nil, nil
}

type fakeServiceRepository struct {
	service *models.Service
	err     error
}

func (f *fakeServiceRepository) FindAllActiveServices(context.Context) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepository) FindServiceByID(context.Context, int64) (*models.Service, error) {
	return f.service, f.err
}

type fakeLockerService struct {
	acquired bool
	unlocked bool
	gotKey   string
}

func (f *fakeLockerService) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	f.gotKey = key
	return f.acquired, "lock-token", nil
}

func (f *fakeLockerService) Unlock(_ context.Context, _, lockValue string) error {
	f.unlocked = lockValue == "lock-token"
	return nil
}

type fakeBookingEventPublisher struct {
	published *contracts.BookingEvent
	err       error
}

func (f *fakeBookingEventPublisher) PublishBookingEvent(_ context.Context, event *contracts.BookingEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = event
	return nil
}

func patientSessionData(t *testing.T) string {
	t.Helper()
	sessionData, err := json.Marshal(&models.Session{
		SessionID: "session-1",
		UserID:    "user-1",
		PatientID: "patient-1",
		Role:      constvars.ClinicRolePatient,
		FirstName: "Siti",
		LastName:  "Rahma",
		Email:     "siti@example.com",
	})
	assert.NoError(t, err)
	return string(sessionData)
}

func activeService() *models.Service {
	return &models.Service{
		ID:     1,
		Name:   "Scaling",
		Status: constvars.ServiceStatusActive,
	}
}

func TestReserveAppointment(t *testing.T) {
	futureDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	newUsecase := func(appointmentRepository *fakeAppointmentRepository, serviceRepository *fakeServiceRepository, locker *fakeLockerService, publisher *fakeBookingEventPublisher) *reservationUsecase {
		return &reservationUsecase{
			AppointmentRepository: appointmentRepository,
			ServiceRepository:     serviceRepository,
			LockerService:         locker,
			BookingEventPublisher: publisher,
			Log:                   zap.NewNop(),
		}
	}

	t.Run("Success", func(t *testing.T) {
		appointmentRepository := &fakeAppointmentRepository{}
		locker := &fakeLockerService{acquired: true}
		publisher := &fakeBookingEventPublisher{}
		usecase := newUsecase(appointmentRepository, &fakeServiceRepository{service: activeService()}, locker, publisher)

		response, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", response.Appointment.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, response.Appointment.Status)
		assert.Equal(t, "Scaling", response.Appointment.ServiceName)
		assert.Equal(t, constvars.AppointmentStatusPending, appointmentRepository.createdAppointment.Status)
		assert.Equal(t, "patient-1", appointmentRepository.createdAppointment.PatientID)
		assert.Contains(t, locker.gotKey, futureDate)
		assert.True(t, locker.unlocked, "day lock must be released after booking")
		assert.Equal(t, constvars.NotificationTypeNewBookingRequest, publisher.published.Type)
		assert.Equal(t, "Siti Rahma", publisher.published.PatientName)
	})

	t.Run("Day Lock Busy", func(t *testing.T) {
		usecase := newUsecase(&fakeAppointmentRepository{}, &fakeServiceRepository{service: activeService()}, &fakeLockerService{acquired: false}, &fakeBookingEventPublisher{})

		_, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.ErrReservationDayLock(nil).StatusCode, customErr.StatusCode)
	})

	t.Run("Slot Already Booked", func(t *testing.T) {
		slotTaken := exceptions.ErrSlotAlreadyBooked(nil)
		locker := &fakeLockerService{acquired: true}
		usecase := newUsecase(&fakeAppointmentRepository{createErr: slotTaken}, &fakeServiceRepository{service: activeService()}, locker, &fakeBookingEventPublisher{})

		_, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:00",
		})

		assert.Equal(t, slotTaken, err)
		assert.True(t, locker.unlocked, "day lock must be released on failure too")
	})

	t.Run("Inactive Service", func(t *testing.T) {
		inactive := activeService()
		inactive.Status = constvars.ServiceStatusInactive
		usecase := newUsecase(&fakeAppointmentRepository{}, &fakeServiceRepository{service: inactive}, &fakeLockerService{acquired: true}, &fakeBookingEventPublisher{})

		_, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:00",
		})

		assert.Error(t, err)
	})

	t.Run("Staff Session Without Patient", func(t *testing.T) {
		staffSession, err := json.Marshal(&models.Session{
			SessionID: "session-2",
			UserID:    "user-2",
			StaffID:   "staff-1",
			Role:      constvars.ClinicRoleDentist,
		})
		assert.NoError(t, err)

		usecase := newUsecase(&fakeAppointmentRepository{}, &fakeServiceRepository{service: activeService()}, &fakeLockerService{acquired: true}, &fakeBookingEventPublisher{})

		_, reserveErr := usecase.ReserveAppointment(context.Background(), string(staffSession), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:00",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, reserveErr, &customErr)
		assert.Equal(t, exceptions.ErrNotAuthorized(nil).StatusCode, customErr.StatusCode)
	})

	t.Run("Non Canonical Time Spelling", func(t *testing.T) {
		// "9:00" would be a distinct TEXT key from "09:00" in the slot
		// unique index, so it must never reach the insert.
		appointmentRepository := &fakeAppointmentRepository{}
		usecase := newUsecase(appointmentRepository, &fakeServiceRepository{service: activeService()}, &fakeLockerService{acquired: true}, &fakeBookingEventPublisher{})

		_, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "9:00",
		})

		assert.Error(t, err)
		assert.Nil(t, appointmentRepository.createdAppointment, "nothing may be written for a non-canonical time")
	})

	t.Run("Off Grid Time", func(t *testing.T) {
		usecase := newUsecase(&fakeAppointmentRepository{}, &fakeServiceRepository{service: activeService()}, &fakeLockerService{acquired: true}, &fakeBookingEventPublisher{})

		_, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:07",
		})

		assert.Error(t, err)
	})

	t.Run("Publish Failure Does Not Fail Booking", func(t *testing.T) {
		appointmentRepository := &fakeAppointmentRepository{}
		usecase := newUsecase(appointmentRepository, &fakeServiceRepository{service: activeService()}, &fakeLockerService{acquired: true}, &fakeBookingEventPublisher{err: assert.AnError})

		response, err := usecase.ReserveAppointment(context.Background(), patientSessionData(t), &requests.ReserveAppointment{
			ServiceID:       1,
			AppointmentDate: futureDate,
			AppointmentTime: "10:00",
		})

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", response.Appointment.ID)
	})
}
