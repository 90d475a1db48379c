package models

type User struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Password          string `json:"-"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	ContactNumber     string `json:"contact_number"`
	Role              string `json:"role"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	TimeModel
}
