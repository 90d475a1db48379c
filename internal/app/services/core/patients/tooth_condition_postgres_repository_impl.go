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

type toothConditionPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	toothConditionPostgresRepositoryInstance contracts.ToothConditionRepository
	onceToothConditionPostgresRepository     sync.Once
)

func NewToothConditionPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ToothConditionRepository {
	onceToothConditionPostgresRepository.Do(func() {
		toothConditionPostgresRepositoryInstance = &toothConditionPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return toothConditionPostgresRepositoryInstance
}

// UpsertToothCondition writes one dental chart entry; a second write for the
// same patient and tooth number overwrites the first.
func (r *toothConditionPostgresRepository) UpsertToothCondition(ctx context.Context, condition *models.ToothCondition) (string, error) {
	var conditionID string
	err := r.DB.QueryRowContext(ctx, queries.UpsertToothCondition,
		condition.PatientID,
		condition.ToothNumber,
		condition.Condition,
		condition.Notes,
		condition.RecordedBy,
	).Scan(&conditionID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return conditionID, nil
}

func (r *toothConditionPostgresRepository) FindToothConditionsByPatientID(ctx context.Context, patientID string) ([]models.ToothCondition, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetToothConditionsByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	conditions := make([]models.ToothCondition, 0)
	for rows.Next() {
		var condition models.ToothCondition
		err := rows.Scan(
			&condition.ID,
			&condition.PatientID,
			&condition.ToothNumber,
			&condition.Condition,
			&condition.Notes,
			&condition.RecordedBy,
			&condition.CreatedAt,
			&condition.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		conditions = append(conditions, condition)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return conditions, nil
}
