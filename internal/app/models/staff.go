package models

type Staff struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Position string `json:"position"`
	TimeModel
}
