package queries

const (
	// InsertAppointment relies on the partial unique index
	// uq_appointments_active_slot (appointment_date, appointment_time
	// WHERE status <> 'cancelled'): a second non-cancelled booking for the
	// same slot fails with a unique violation instead of double-booking.
	InsertAppointment = `
		INSERT INTO appointments (patient_id, service_id, appointment_date, appointment_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	GetBookedDatesInRange = `
		SELECT DISTINCT appointment_date::text
		FROM appointments
		WHERE appointment_date >= $1 AND appointment_date < $2
		  AND status <> 'cancelled'
		ORDER BY appointment_date::text
	`

	GetUnavailableSlotsByDate = `
		SELECT DISTINCT appointment_time
		FROM appointments
		WHERE appointment_date = $1 AND status <> 'cancelled'
		ORDER BY appointment_time
	`

	GetAppointmentByID = `
		SELECT id, patient_id, service_id, appointment_date::text, appointment_time, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	UpdateAppointmentStatus = `
		UPDATE appointments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	GetUpcomingAppointmentByPatientID = `
		SELECT a.id, a.patient_id, a.service_id, a.appointment_date::text, a.appointment_time, a.status, s.name
		FROM appointments a
		LEFT JOIN services s ON s.id = a.service_id
		WHERE a.patient_id = $1
		  AND a.status <> 'cancelled'
		  AND (a.appointment_date > CURRENT_DATE
		       OR (a.appointment_date = CURRENT_DATE AND a.appointment_time >= to_char(NOW(), 'HH24:MI')))
		ORDER BY a.appointment_date, a.appointment_time
		LIMIT 1
	`

	GetAppointmentsByDate = `
		SELECT a.id, a.patient_id, a.service_id, a.appointment_date::text, a.appointment_time, a.status
		FROM appointments a
		WHERE a.appointment_date = $1 AND a.status IN ('pending', 'confirmed')
		ORDER BY a.appointment_time
	`
)
