package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	GetToothConditions(ctx context.Context, sessionData, patientID string) ([]responses.ToothCondition, error)
	UpsertToothCondition(ctx context.Context, sessionData, patientID string, request *requests.UpsertToothCondition) (*responses.ToothCondition, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatientProfile(ctx context.Context, patient *models.Patient) error
}

type ToothConditionRepository interface {
	UpsertToothCondition(ctx context.Context, condition *models.ToothCondition) (string, error)
	FindToothConditionsByPatientID(ctx context.Context, patientID string) ([]models.ToothCondition, error)
}
