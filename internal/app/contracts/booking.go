package contracts

import "context"

// BookingEvent is the message published to the booking queue whenever an
// appointment is created or changes status. The consumer fans it out into
// notification rows and a clinic email.
type BookingEvent struct {
	Type            string `json:"type"`
	AppointmentID   string `json:"appointment_id"`
	PatientID       string `json:"patient_id"`
	PatientUserID   string `json:"patient_user_id"`
	PatientName     string `json:"patient_name"`
	ServiceName     string `json:"service_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

type BookingEventPublisher interface {
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error
}
