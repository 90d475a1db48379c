package models

import (
	"dental-clinic-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	PatientID     string    `json:"patient_id,omitempty"`
	StaffID       string    `json:"staff_id,omitempty"`
	Role          string    `json:"role"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (s *Session) IsStaffRole() bool {
	return s.StaffID != "" && s.Role != constvars.ClinicRolePatient
}
