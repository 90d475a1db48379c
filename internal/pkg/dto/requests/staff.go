package requests

type CreateStaff struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"password"`
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"required,max=50"`
	ContactNumber string `json:"contact_number" validate:"required,phone_number"`
	Role          string `json:"role" validate:"required,oneof=Admin Dentist Staff"`
	Position      string `json:"position" validate:"required,max=50"`
}
