package catalog

import (
	"context"
	"database/sql"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type servicePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	servicePostgresRepositoryInstance contracts.ServiceRepository
	onceServicePostgresRepository     sync.Once
)

func NewServicePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ServiceRepository {
	onceServicePostgresRepository.Do(func() {
		servicePostgresRepositoryInstance = &servicePostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return servicePostgresRepositoryInstance
}

func (r *servicePostgresRepository) FindAllActiveServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllActiveServices)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var service models.Service
		err := rows.Scan(&service.ID, &service.Name, &service.Price, &service.Unit, &service.Type, &service.Status)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return services, nil
}

func (r *servicePostgresRepository) FindServiceByID(ctx context.Context, serviceID int64) (*models.Service, error) {
	service := new(models.Service)
	err := r.DB.QueryRowContext(ctx, queries.GetServiceByID, serviceID).
		Scan(&service.ID, &service.Name, &service.Price, &service.Unit, &service.Type, &service.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, exceptions.ErrServiceNotAvailable(err)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return service, nil
}
