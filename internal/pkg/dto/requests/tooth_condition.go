package requests

type UpsertToothCondition struct {
	ToothNumber int    `json:"tooth_number" validate:"required,min=11,max=48"`
	Condition   string `json:"condition" validate:"required,max=50"`
	Notes       string `json:"notes,omitempty" validate:"max=500"`
}
