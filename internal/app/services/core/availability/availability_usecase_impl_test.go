package availability

import (
	"context"
	"testing"
	"time"

	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	bookedDates      []string
	unavailableSlots []string
	gotFrom, gotTo   time.Time
	gotDate          string
}

func (f *fakeAppointmentRepository) CreateAppointment(context.Context, *models.Appointment) (string, error) {
	return "", nil
}

func (f *fakeAppointmentRepository) FindBookedDatesInRange(_ context.Context, from, to time.Time) ([]string, error) {
	f.gotFrom, f.gotTo = from, to
	return f.bookedDates, nil
}

func (f *fakeAppointmentRepository) FindUnavailableSlotsByDate(_ context.Context, date string) ([]string, error) {
	f.gotDate = date
	return f.unavailableSlots, nil
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

func TestGetBookedDates(t *testing.T) {
	repo := &fakeAppointmentRepository{bookedDates: []string{"2025-09-16", "2025-09-20"}}
	usecase := &availabilityUsecase{AppointmentRepository: repo, Log: zap.NewNop()}

	response, err := usecase.GetBookedDates(context.Background(), &requests.BookedDates{Year: 2025, Month: 9})

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-09-16", "2025-09-20"}, response.BookedDates)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), repo.gotFrom, "range should start at the first of the month")
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), repo.gotTo, "range end should be exclusive")

	t.Run("Invalid Month", func(t *testing.T) {
		_, err := usecase.GetBookedDates(context.Background(), &requests.BookedDates{Year: 2025, Month: 13})
		assert.Error(t, err)
	})
}

func TestGetUnavailableSlots(t *testing.T) {
	repo := &fakeAppointmentRepository{unavailableSlots: []string{"10:00"}}
	usecase := &availabilityUsecase{AppointmentRepository: repo, Log: zap.NewNop()}

	// A historical date is a valid read; only reservations refuse the past.
	response, err := usecase.GetUnavailableSlots(context.Background(), &requests.UnavailableSlots{Date: "2025-09-16"})

	assert.NoError(t, err)
	assert.Equal(t, "2025-09-16", repo.gotDate)
	assert.Equal(t, []string{"10:00"}, response.UnavailableSlots)

	t.Run("Off Grid Times Are Filtered", func(t *testing.T) {
		repo.unavailableSlots = []string{"08:30", "10:00", "10:07", "9:15", "17:45"}

		response, err := usecase.GetUnavailableSlots(context.Background(), &requests.UnavailableSlots{Date: "2025-09-16"})

		assert.NoError(t, err)
		assert.Equal(t, []string{"10:00", "17:45"}, response.UnavailableSlots)
	})

	t.Run("Malformed Date", func(t *testing.T) {
		_, err := usecase.GetUnavailableSlots(context.Background(), &requests.UnavailableSlots{Date: "16/09/2025"})
		assert.Error(t, err)
	})

	t.Run("No Bookings", func(t *testing.T) {
		repo.unavailableSlots = nil

		response, err := usecase.GetUnavailableSlots(context.Background(), &requests.UnavailableSlots{Date: "2025-09-17"})

		assert.NoError(t, err)
		assert.Empty(t, response.UnavailableSlots)
	})
}
