package models

type Patient struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	BirthDate string `json:"birth_date,omitempty"`
	Address   string `json:"address,omitempty"`
	TimeModel
}
