package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password" validate:"required"`
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	ContactNumber  string `json:"contact_number" validate:"required,phone_number"`
	BirthDate      string `json:"birth_date,omitempty"`
	Address        string `json:"address,omitempty"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
