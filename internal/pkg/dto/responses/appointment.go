package responses

type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	ServiceID       int64  `json:"service_id"`
	ServiceName     string `json:"service_name,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
}

type CreateReservation struct {
	Appointment Appointment `json:"appointment"`
}
