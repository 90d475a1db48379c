package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

var (
	notificationUsecaseInstance contracts.NotificationUsecase
	onceNotificationUsecase     sync.Once
)

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	onceNotificationUsecase.Do(func() {
		notificationUsecaseInstance = &notificationUsecase{
			NotificationRepository: notificationRepository,
			Log:                    logger,
		}
	})
	return notificationUsecaseInstance
}

func (uc *notificationUsecase) FindAll(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]responses.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	notifications, err := uc.NotificationRepository.FindNotificationsByUserID(ctx, session.UserID, pagination.PageSize, offset)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Notification, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, responses.Notification{
			ID:        notification.ID,
			Type:      notification.Type,
			Payload:   notification.Payload,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

// MarkAsRead acknowledges one notification. The repository update is scoped
// to the caller's user id, so marking someone else's notification reports
// not found.
func (uc *notificationUsecase) MarkAsRead(ctx context.Context, sessionData, notificationID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("notificationUsecase.MarkAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, notificationID),
	)

	session, err := utils.ParseSessionData(sessionData)
	if err != nil {
		return err
	}

	rowsAffected, err := uc.NotificationRepository.MarkNotificationRead(ctx, notificationID, session.UserID)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return exceptions.ErrNotificationNotFound(fmt.Errorf("notification %s not found for user %s", notificationID, session.UserID))
	}
	return nil
}
