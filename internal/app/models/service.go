package models

type Service struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Unit   string  `json:"unit"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
	TimeModel
}
