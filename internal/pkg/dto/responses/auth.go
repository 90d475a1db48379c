package responses

type Login struct {
	Token         string `json:"token"`
	UserID        string `json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Role          string `json:"role"`
}

type Register struct {
	UserID    string `json:"user_id"`
	PatientID string `json:"patient_id"`
	Email     string `json:"email"`
}
