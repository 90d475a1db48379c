package notifications

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

type notificationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	notificationPostgresRepositoryInstance contracts.NotificationRepository
	onceNotificationPostgresRepository     sync.Once
)

func NewNotificationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.NotificationRepository {
	onceNotificationPostgresRepository.Do(func() {
		notificationPostgresRepositoryInstance = &notificationPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return notificationPostgresRepositoryInstance
}

func (r *notificationPostgresRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	var notificationID string
	err := r.DB.QueryRowContext(ctx, queries.InsertNotification,
		notification.UserID,
		notification.Type,
		notification.Payload,
	).Scan(&notificationID)
	if err != nil {
		return "", exceptions.ErrPostgresDBInsertData(err)
	}
	return notificationID, nil
}

func (r *notificationPostgresRepository) FindNotificationsByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Notification, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetNotificationsByUserID, userID, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var notification models.Notification
		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Type,
			&notification.Payload,
			&notification.IsRead,
			&notification.CreatedAt,
			&notification.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return notifications, nil
}

func (r *notificationPostgresRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, queries.MarkNotificationRead, notificationID, userID)
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, exceptions.ErrPostgresDBUpdateData(err)
	}
	return rowsAffected, nil
}

func (r *notificationPostgresRepository) FindStaffUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetStaffUserIDs)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	userIDs := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return userIDs, nil
}
