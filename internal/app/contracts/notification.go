package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	FindAll(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]responses.Notification, error)
	MarkAsRead(ctx context.Context, sessionData, notificationID string) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindNotificationsByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Notification, error)
	// MarkNotificationRead returns the number of rows updated so the
	// usecase can distinguish "not found or not yours" from success.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) (int64, error)
	FindStaffUserIDs(ctx context.Context) ([]string, error)
}
