package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type StaffUsecase interface {
	CreateStaff(ctx context.Context, sessionData string, request *requests.CreateStaff) (*responses.Staff, error)
	FindAllStaff(ctx context.Context, sessionData string) ([]responses.Staff, error)
}

type StaffRepository interface {
	CreateStaff(ctx context.Context, staff *models.Staff) (string, error)
	FindStaffByUserID(ctx context.Context, userID string) (*models.Staff, error)
	FindAllStaff(ctx context.Context) ([]responses.Staff, error)
}
