package models

type Invoice struct {
	ID            string  `json:"id"`
	AppointmentID string  `json:"appointment_id"`
	Total         float64 `json:"total"`
	IssuedAt      string  `json:"issued_at"`
	TimeModel
}

type InvoiceItem struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoice_id"`
	ServiceID int64   `json:"service_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
