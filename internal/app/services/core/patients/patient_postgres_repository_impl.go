package patients

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

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		patientPostgresRepositoryInstance = &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return patientPostgresRepositoryInstance
}

func (r *patientPostgresRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	var patientID string
	err := r.DB.QueryRowContext(ctx, queries.InsertPatient,
		patient.UserID,
		patient.BirthDate,
		patient.Address,
	).Scan(&patientID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return patientID, nil
}

func (r *patientPostgresRepository) FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return r.findPatient(ctx, queries.GetPatientByUserID, userID)
}

func (r *patientPostgresRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.findPatient(ctx, queries.GetPatientByID, patientID)
}

func (r *patientPostgresRepository) findPatient(ctx context.Context, query string, arg interface{}) (*models.Patient, error) {
	patient := new(models.Patient)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&patient.ID,
		&patient.UserID,
		&patient.BirthDate,
		&patient.Address,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, exceptions.ErrPatientNotFound(err)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return patient, nil
}

func (r *patientPostgresRepository) UpdatePatientProfile(ctx context.Context, patient *models.Patient) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdatePatientProfile,
		patient.BirthDate,
		patient.Address,
		patient.UserID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
