package models

import "dental-clinic-service/internal/pkg/constvars"

type Appointment struct {
	ID              string `json:"id"`
	PatientID       string `json:"patient_id"`
	ServiceID       int64  `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	TimeModel
}

// allowedTransitions is the authoritative status state machine, checked on
// every status update.
var allowedTransitions = map[string][]string{
	constvars.AppointmentStatusPending:     {constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled},
	constvars.AppointmentStatusConfirmed:   {constvars.AppointmentStatusCancelled, constvars.AppointmentStatusRescheduled},
	constvars.AppointmentStatusRescheduled: {constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled},
	constvars.AppointmentStatusCancelled:   {},
}

func (a *Appointment) CanTransitionTo(status string) bool {
	for _, next := range allowedTransitions[a.Status] {
		if next == status {
			return true
		}
	}
	return false
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == constvars.AppointmentStatusCancelled
}
