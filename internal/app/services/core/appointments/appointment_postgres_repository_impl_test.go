package appointments

import (
	"context"
	"regexp"
	"testing"
	"time"

	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newMockedRepository(t *testing.T) (*appointmentPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &appointmentPostgresRepository{DB: db, Log: zap.NewNop()}, mock
}

func TestCreateAppointment(t *testing.T) {
	appointment := &models.Appointment{
		PatientID:       "patient-1",
		ServiceID:       1,
		AppointmentDate: "2026-09-16",
		AppointmentTime: "10:00",
		Status:          constvars.AppointmentStatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
			WithArgs("patient-1", int64(1), "2026-09-16", "10:00", constvars.AppointmentStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("appointment-1"))

		appointmentID, err := repo.CreateAppointment(context.Background(), appointment)

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", appointmentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Slot Taken", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
			WithArgs("patient-1", int64(1), "2026-09-16", "10:00", constvars.AppointmentStatusPending).
			WillReturnError(&pq.Error{Code: pq.ErrorCode(uniqueViolationCode), Constraint: "uq_appointments_active_slot"})

		_, err := repo.CreateAppointment(context.Background(), appointment)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Other Database Error", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
			WillReturnError(assert.AnError)

		_, err := repo.CreateAppointment(context.Background(), appointment)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})
}

func TestFindBookedDatesInRange(t *testing.T) {
	repo, mock := newMockedRepository(t)
	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT appointment_date::text")).
		WithArgs("2026-09-01", "2026-10-01").
		WillReturnRows(sqlmock.NewRows([]string{"appointment_date"}).
			AddRow("2026-09-16").
			AddRow("2026-09-20"))

	dates, err := repo.FindBookedDatesInRange(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-09-16", "2026-09-20"}, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAppointmentByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByID)).
			WithArgs("appointment-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "service_id", "appointment_date", "appointment_time", "status", "created_at", "updated_at"}).
				AddRow("appointment-1", "patient-1", int64(1), "2026-09-16", "10:00", constvars.AppointmentStatusPending, time.Now(), time.Now()))

		appointment, err := repo.FindAppointmentByID(context.Background(), "appointment-1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queries.GetAppointmentByID)).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindAppointmentByID(context.Background(), "missing")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestFindUpcomingAppointmentByPatientID(t *testing.T) {
	t.Run("No Upcoming Appointment", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN services")).
			WithArgs("patient-1").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		appointment, err := repo.FindUpcomingAppointmentByPatientID(context.Background(), "patient-1")

		assert.NoError(t, err)
		assert.Nil(t, appointment)
	})

	t.Run("Null Service Name", func(t *testing.T) {
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN services")).
			WithArgs("patient-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "service_id", "appointment_date", "appointment_time", "status", "name"}).
				AddRow("appointment-1", "patient-1", int64(1), "2026-09-16", "10:00", constvars.AppointmentStatusConfirmed, nil))

		appointment, err := repo.FindUpcomingAppointmentByPatientID(context.Background(), "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "", appointment.ServiceName)
	})
}
