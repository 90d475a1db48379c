package responses

type BookedDates struct {
	BookedDates []string `json:"booked_dates"`
}

type UnavailableSlots struct {
	UnavailableSlots []string `json:"unavailable_slots"`
}
