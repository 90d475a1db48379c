package models

import (
	"testing"

	"dental-clinic-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed, true},
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusRescheduled, false},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusRescheduled, true},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusPending, false},
		{constvars.AppointmentStatusRescheduled, constvars.AppointmentStatusConfirmed, true},
		{constvars.AppointmentStatusRescheduled, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusConfirmed, false},
		{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusPending, false},
	}

	for _, tc := range cases {
		appointment := &Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, appointment.CanTransitionTo(tc.to),
			"%s -> %s should be %v", tc.from, tc.to, tc.allowed)
	}
}

func TestAppointmentIsCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCancelled}).IsCancelled())
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusPending}).IsCancelled())
}
