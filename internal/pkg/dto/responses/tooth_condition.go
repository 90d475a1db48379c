package responses

type ToothCondition struct {
	ID          string `json:"id"`
	ToothNumber int    `json:"tooth_number"`
	Condition   string `json:"condition"`
	Notes       string `json:"notes,omitempty"`
	RecordedBy  string `json:"recorded_by"`
	UpdatedAt   string `json:"updated_at"`
}
