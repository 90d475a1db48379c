package catalog

import (
	"context"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	Log               *zap.Logger
}

var (
	serviceUsecaseInstance contracts.ServiceUsecase
	onceServiceUsecase     sync.Once
)

func NewServiceUsecase(serviceRepository contracts.ServiceRepository, logger *zap.Logger) contracts.ServiceUsecase {
	onceServiceUsecase.Do(func() {
		serviceUsecaseInstance = &serviceUsecase{
			ServiceRepository: serviceRepository,
			Log:               logger,
		}
	})
	return serviceUsecaseInstance
}

func (uc *serviceUsecase) FindAllServices(ctx context.Context) ([]responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.FindAllServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	services, err := uc.ServiceRepository.FindAllActiveServices(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Service, 0, len(services))
	for _, service := range services {
		response = append(response, responses.Service{
			ID:     service.ID,
			Name:   service.Name,
			Price:  service.Price,
			Unit:   service.Unit,
			Type:   service.Type,
			Status: service.Status,
		})
	}

	uc.Log.Info("serviceUsecase.FindAllServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("service_count", len(response)),
	)
	return response, nil
}
