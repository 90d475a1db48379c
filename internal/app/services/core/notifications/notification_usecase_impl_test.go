package notifications

import (
	"context"
	"testing"
	"time"

	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeNotificationRepository struct {
	notifications []models.Notification
	rowsAffected  int64
	staffUserIDs  []string
	createErr     error

	created             []models.Notification
	gotUserID           string
	gotLimit, gotOffset int
	gotNotificationID   string
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, notification *models.Notification) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, *notification)
	return "notification-1", nil
}

func (f *fakeNotificationRepository) FindNotificationsByUserID(_ context.Context, userID string, limit, offset int) ([]models.Notification, error) {
	f.gotUserID = userID
	f.gotLimit, f.gotOffset = limit, offset
	return f.notifications, nil
}

func (f *fakeNotificationRepository) MarkNotificationRead(_ context.Context, notificationID, userID string) (int64, error) {
	f.gotNotificationID = notificationID
	f.gotUserID = userID
	return f.rowsAffected, nil
}

func (f *fakeNotificationRepository) FindStaffUserIDs(context.Context) ([]string, error) {
	return f.staffUserIDs, nil
}

func sessionDataForUser(t *testing.T, userID string) string {
	t.Helper()
	sessionData, err := json.Marshal(&models.Session{
		SessionID: "session-1",
		UserID:    userID,
		Role:      constvars.ClinicRolePatient,
	})
	assert.NoError(t, err)
	return string(sessionData)
}

func TestFindAll(t *testing.T) {
	notification := models.Notification{
		ID:      "notification-1",
		UserID:  "user-1",
		Type:    constvars.NotificationTypeNewBookingRequest,
		Payload: `{"appointment_id":"appointment-1"}`,
	}
	notification.CreatedAt = time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)

	repo := &fakeNotificationRepository{notifications: []models.Notification{notification}}
	usecase := &notificationUsecase{NotificationRepository: repo, Log: zap.NewNop()}

	response, err := usecase.FindAll(context.Background(), sessionDataForUser(t, "user-1"), &requests.Pagination{Page: 2, PageSize: 10})

	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "notification-1", response[0].ID)
	assert.Equal(t, "2026-08-30T09:00:00Z", response[0].CreatedAt)
	assert.Equal(t, "user-1", repo.gotUserID)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, 10, repo.gotOffset, "page 2 with page size 10 starts at offset 10")
}

func TestMarkAsRead(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &fakeNotificationRepository{rowsAffected: 1}
		usecase := &notificationUsecase{NotificationRepository: repo, Log: zap.NewNop()}

		err := usecase.MarkAsRead(context.Background(), sessionDataForUser(t, "user-1"), "notification-1")

		assert.NoError(t, err)
		assert.Equal(t, "notification-1", repo.gotNotificationID)
		assert.Equal(t, "user-1", repo.gotUserID)
	})

	t.Run("Not Owned Or Missing", func(t *testing.T) {
		repo := &fakeNotificationRepository{rowsAffected: 0}
		usecase := &notificationUsecase{NotificationRepository: repo, Log: zap.NewNop()}

		err := usecase.MarkAsRead(context.Background(), sessionDataForUser(t, "user-2"), "notification-1")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Garbage Session", func(t *testing.T) {
		usecase := &notificationUsecase{NotificationRepository: &fakeNotificationRepository{}, Log: zap.NewNop()}

		err := usecase.MarkAsRead(context.Background(), "{not json", "notification-1")

		assert.Error(t, err)
	})
}
