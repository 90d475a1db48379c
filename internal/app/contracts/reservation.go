package contracts

import (
	"context"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type ReservationUsecase interface {
	ReserveAppointment(ctx context.Context, sessionData string, request *requests.ReserveAppointment) (*responses.CreateReservation, error)
}
