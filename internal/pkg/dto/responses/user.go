package responses

type Profile struct {
	UserID            string `json:"user_id"`
	Email             string `json:"email"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	ContactNumber     string `json:"contact_number"`
	Role              string `json:"role"`
	BirthDate         string `json:"birth_date,omitempty"`
	Address           string `json:"address,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}
