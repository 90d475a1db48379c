package responses

type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Payload   string `json:"payload"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
