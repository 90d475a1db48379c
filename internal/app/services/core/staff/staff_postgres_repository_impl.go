package staff

import (
	"context"
	"database/sql"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type staffPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	staffPostgresRepositoryInstance contracts.StaffRepository
	onceStaffPostgresRepository     sync.Once
)

func NewStaffPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.StaffRepository {
	onceStaffPostgresRepository.Do(func() {
		staffPostgresRepositoryInstance = &staffPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return staffPostgresRepositoryInstance
}

func (r *staffPostgresRepository) CreateStaff(ctx context.Context, staff *models.Staff) (string, error) {
	var staffID string
	err := r.DB.QueryRowContext(ctx, queries.InsertStaff, staff.UserID, staff.Position).Scan(&staffID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return staffID, nil
}

func (r *staffPostgresRepository) FindStaffByUserID(ctx context.Context, userID string) (*models.Staff, error) {
	staff := new(models.Staff)
	err := r.DB.QueryRowContext(ctx, queries.GetStaffByUserID, userID).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.Position,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return staff, nil
}

func (r *staffPostgresRepository) FindAllStaff(ctx context.Context) ([]responses.Staff, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllStaff)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	staffMembers := make([]responses.Staff, 0)
	for rows.Next() {
		var member responses.Staff
		err := rows.Scan(
			&member.ID,
			&member.UserID,
			&member.FirstName,
			&member.LastName,
			&member.Email,
			&member.ContactNumber,
			&member.Role,
			&member.Position,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		staffMembers = append(staffMembers, member)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return staffMembers, nil
}
