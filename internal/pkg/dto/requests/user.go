package requests

type UpdateProfile struct {
	FirstName          string `json:"first_name" validate:"required,max=50"`
	LastName           string `json:"last_name" validate:"required,max=50"`
	ContactNumber      string `json:"contact_number" validate:"required,phone_number"`
	BirthDate          string `json:"birth_date,omitempty"`
	Address            string `json:"address,omitempty"`
	ProfilePicture     []byte `json:"-"`
	ProfilePictureName string `json:"-"`
}
