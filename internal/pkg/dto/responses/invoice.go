package responses

// Invoice is the flat sales view: the nested invoice/appointment/patient/
// dentist join reshaped into one record per line item. Absent relations
// render as literal fallback labels instead of nulls.
type Invoice struct {
	ID          string  `json:"id"`
	PatientName string  `json:"patient_name"`
	DentistName string  `json:"dentist_name"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
}
