package contracts

import (
	"context"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	GetBookedDates(ctx context.Context, request *requests.BookedDates) (*responses.BookedDates, error)
	GetUnavailableSlots(ctx context.Context, request *requests.UnavailableSlots) (*responses.UnavailableSlots, error)
}
