package models

// ToothCondition is one entry on a patient's dental chart, keyed by the
// FDI two-digit tooth number.
type ToothCondition struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	ToothNumber int    `json:"tooth_number"`
	Condition   string `json:"condition"`
	Notes       string `json:"notes,omitempty"`
	RecordedBy  string `json:"recorded_by"`
	TimeModel
}
