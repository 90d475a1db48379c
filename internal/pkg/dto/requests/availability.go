package requests

type BookedDates struct {
	Year  int `validate:"required,min=1"`
	Month int `validate:"required,min=1,max=12"`
}

// UnavailableSlots is a pure read: any well-formed date is queryable,
// including past ones. Only reservations reject past dates.
type UnavailableSlots struct {
	Date string `validate:"required,datetime=2006-01-02"`
}
