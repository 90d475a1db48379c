package utils

import (
	"dental-clinic-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"time"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// BuildBookedDatesRequest reads year and month query parameters, falling
// back to the current month when either is absent or malformed.
func BuildBookedDatesRequest(r *http.Request) *requests.BookedDates {
	now := time.Now()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		year = now.Year()
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}

	return &requests.BookedDates{
		Year:  year,
		Month: month,
	}
}

func BuildUnavailableSlotsRequest(r *http.Request) *requests.UnavailableSlots {
	return &requests.UnavailableSlots{
		Date: r.URL.Query().Get("date"),
	}
}
