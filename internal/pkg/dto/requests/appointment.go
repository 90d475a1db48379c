package requests

type ReserveAppointment struct {
	ServiceID       int64  `json:"service_id" validate:"required,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"required,appointment_date"`
	AppointmentTime string `json:"appointment_time" validate:"required,slot_time"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled rescheduled"`
}
