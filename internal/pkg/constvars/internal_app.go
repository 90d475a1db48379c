package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "DNTL_SVC_"
)

const (
	ClinicRoleAdmin   = "Admin"
	ClinicRoleDentist = "Dentist"
	ClinicRoleStaff   = "Staff"
	ClinicRolePatient = "Patient"
)

// Appointment lifecycle statuses. Transitions are enforced by
// models.Appointment.CanTransitionTo.
const (
	AppointmentStatusPending     = "pending"
	AppointmentStatusConfirmed   = "confirmed"
	AppointmentStatusCancelled   = "cancelled"
	AppointmentStatusRescheduled = "rescheduled"
)

const (
	NotificationTypeConfirmed         = "confirmed"
	NotificationTypeCancelled         = "cancelled"
	NotificationTypeRescheduled       = "rescheduled"
	NotificationTypePending           = "pending"
	NotificationTypeNewBookingRequest = "new_booking_request"
	NotificationTypeReminder          = "reminder"
)

// Daily booking grid: 37 fixed 15-minute slots from 09:00 to 18:00 inclusive.
const (
	SlotGridStartHour     = 9
	SlotGridEndHour       = 18
	SlotGridStepInMinutes = 15
	SlotGridSize          = 37
)

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

const (
	RedisSessionKeyPrefix        = "session:"
	RedisReservationDayLockKey   = "reservation:day:%s"
	RedisReminderWorkerLeaderKey = "reminder:leader"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	ServiceStatusActive   = "active"
	ServiceStatusInactive = "inactive"
)
