package constvars

const (
	RegisterSuccessMessage          = "successfully registered"
	LoginSuccessMessage             = "successfully logged in"
	LogoutSuccessMessage            = "successfully logged out"
	GetBookedDatesSuccessMessage    = "successfully fetched booked dates"
	GetUnavailableSlotsMessage      = "successfully fetched unavailable slots"
	CreateReservationSuccessMessage = "successfully reserved the appointment"
	GetServicesSuccessMessage       = "successfully fetched services"
	GetNotificationsSuccessMessage  = "successfully fetched notifications"
	ReadNotificationSuccessMessage  = "successfully marked notification as read"
	GetProfileSuccessMessage        = "successfully fetched profile"
	UpdateProfileSuccessMessage     = "successfully updated profile"
	GetInvoicesSuccessMessage       = "successfully fetched invoices"
	CreateStaffSuccessMessage       = "successfully created staff"
	GetStaffSuccessMessage          = "successfully fetched staff"
	GetToothConditionsMessage       = "successfully fetched tooth conditions"
	UpsertToothConditionMessage     = "successfully saved tooth condition"
	UpdateAppointmentStatusMessage  = "successfully updated appointment status"
	GetUpcomingAppointmentMessage   = "successfully fetched upcoming appointment"
)
