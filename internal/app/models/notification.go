package models

type Notification struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Payload string `json:"payload"`
	IsRead  bool   `json:"is_read"`
	TimeModel
}
