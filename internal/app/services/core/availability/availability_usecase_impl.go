package availability

import (
	"context"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(appointmentRepository contracts.AppointmentRepository, logger *zap.Logger) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return availabilityUsecaseInstance
}

// GetBookedDates lists the days in the requested month that hold at least
// one non-cancelled appointment, so the calendar can mark them.
func (uc *availabilityUsecase) GetBookedDates(ctx context.Context, request *requests.BookedDates) (*responses.BookedDates, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetBookedDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("year", request.Year),
		zap.Int("month", request.Month),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	from, to := utils.MonthBounds(request.Year, request.Month)
	dates, err := uc.AppointmentRepository.FindBookedDatesInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.GetBookedDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("booked_date_count", len(dates)),
	)
	return &responses.BookedDates{BookedDates: dates}, nil
}

// GetUnavailableSlots returns the grid labels already taken on the given
// date. The client subtracts them from the full grid to render choices.
func (uc *availabilityUsecase) GetUnavailableSlots(ctx context.Context, request *requests.UnavailableSlots) (*responses.UnavailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetUnavailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentDateKey, request.Date),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	slots, err := uc.AppointmentRepository.FindUnavailableSlotsByDate(ctx, request.Date)
	if err != nil {
		return nil, err
	}

	// Only labels on the booking grid are reported; historical rows with
	// off-grid times stay invisible to the picker.
	unavailable := make([]string, 0, len(slots))
	for _, slot := range slots {
		if utils.IsGridSlot(slot) {
			unavailable = append(unavailable, slot)
		}
	}

	uc.Log.Info("availabilityUsecase.GetUnavailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("unavailable_slot_count", len(unavailable)),
	)
	return &responses.UnavailableSlots{UnavailableSlots: unavailable}, nil
}
