package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type ServiceUsecase interface {
	FindAllServices(ctx context.Context) ([]responses.Service, error)
}

type ServiceRepository interface {
	FindAllActiveServices(ctx context.Context) ([]models.Service, error)
	FindServiceByID(ctx context.Context, serviceID int64) (*models.Service, error)
}
