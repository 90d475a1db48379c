package users

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/queries"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		userPostgresRepositoryInstance = &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return userPostgresRepositoryInstance
}

func (r *userPostgresRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	var userID string
	err := r.DB.QueryRowContext(ctx, queries.InsertUser,
		user.Email,
		user.Password,
		user.FirstName,
		user.LastName,
		user.ContactNumber,
		user.Role,
	).Scan(&userID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return userID, nil
}

func (r *userPostgresRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, queries.GetUserByEmail, email)
}

func (r *userPostgresRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	return r.findUser(ctx, queries.GetUserByID, userID)
}

func (r *userPostgresRepository) findUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	user := new(models.User)
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.ContactNumber,
		&user.Role,
		&user.ProfilePictureURL,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, exceptions.ErrUserNotExist(err)
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return user, nil
}

func (r *userPostgresRepository) UpdateUserProfile(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateUserProfile,
		user.FirstName,
		user.LastName,
		user.ContactNumber,
		user.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) UpdateUserProfilePicture(ctx context.Context, userID, pictureURL string) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateUserProfilePicture, pictureURL, userID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) DeleteUserByID(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, queries.DeleteUserByID, userID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
