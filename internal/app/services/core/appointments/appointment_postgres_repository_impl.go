package appointments

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/queries"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	appointmentPostgresRepositoryInstance contracts.AppointmentRepository
	onceAppointmentPostgresRepository     sync.Once
)

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	onceAppointmentPostgresRepository.Do(func() {
		appointmentPostgresRepositoryInstance = &appointmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return appointmentPostgresRepositoryInstance
}

// CreateAppointment inserts the appointment and lets the partial unique
// index on (appointment_date, appointment_time) arbitrate concurrent
// bookings. A unique violation maps to a slot conflict, not a server error.
func (r *appointmentPostgresRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	var appointmentID string
	err := r.DB.QueryRowContext(ctx, queries.InsertAppointment,
		appointment.PatientID,
		appointment.ServiceID,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
	).Scan(&appointmentID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return "", exceptions.ErrSlotAlreadyBooked(err)
		}
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return appointmentID, nil
}

func (r *appointmentPostgresRepository) FindBookedDatesInRange(ctx context.Context, from, to time.Time) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetBookedDatesInRange,
		from.Format(constvars.AppointmentDateLayout),
		to.Format(constvars.AppointmentDateLayout),
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return dates, nil
}

func (r *appointmentPostgresRepository) FindUnavailableSlotsByDate(ctx context.Context, date string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetUnavailableSlotsByDate, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return slots, nil
}

func (r *appointmentPostgresRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment := new(models.Appointment)
	err := r.DB.QueryRowContext(ctx, queries.GetAppointmentByID, appointmentID).Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.ServiceID,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, exceptions.ErrAppointmentNotFound(err)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *appointmentPostgresRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateAppointmentStatus, status, appointmentID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *appointmentPostgresRepository) FindUpcomingAppointmentByPatientID(ctx context.Context, patientID string) (*responses.Appointment, error) {
	appointment := new(responses.Appointment)
	var serviceName sql.NullString
	err := r.DB.QueryRowContext(ctx, queries.GetUpcomingAppointmentByPatientID, patientID).Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.ServiceID,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.Status,
		&serviceName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	appointment.ServiceName = serviceName.String
	return appointment, nil
}

func (r *appointmentPostgresRepository) FindAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAppointmentsByDate, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		var appointment models.Appointment
		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.ServiceID,
			&appointment.AppointmentDate,
			&appointment.AppointmentTime,
			&appointment.Status,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return appointments, nil
}
