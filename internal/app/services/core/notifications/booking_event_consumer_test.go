package notifications

import (
	"context"
	"testing"

	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAcknowledger struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(uint64, bool) error { f.acked = true; return nil }

func (f *fakeAcknowledger) Nack(_ uint64, _, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(uint64, bool) error { return nil }

type fakeConsumerUserRepository struct {
	user *models.User
}

func (f *fakeConsumerUserRepository) CreateUser(context.Context, *models.User) (string, error) {
	return "", nil
}

func (f *fakeConsumerUserRepository) FindUserByEmail(context.Context, string) (*models.User, error) {
	return f.user, nil
}

func (f *fakeConsumerUserRepository) FindUserByID(context.Context, string) (*models.User, error) {
	return f.user, nil
}

func (f *fakeConsumerUserRepository) UpdateUserProfile(context.Context, *models.User) error {
	return nil
}

func (f *fakeConsumerUserRepository) UpdateUserProfilePicture(context.Context, string, string) error {
	return nil
}

func (f *fakeConsumerUserRepository) DeleteUserByID(context.Context, string) error {
	return nil
}

type fakeMailerService struct {
	sent []requests.EmailPayload
}

func (f *fakeMailerService) SendEmail(_ context.Context, payload *requests.EmailPayload) error {
	f.sent = append(f.sent, *payload)
	return nil
}

func newTestConsumer(repo *fakeNotificationRepository, mailerSvc *fakeMailerService) *BookingEventConsumer {
	return &BookingEventConsumer{
		NotificationRepository: repo,
		UserRepository:         &fakeConsumerUserRepository{user: &models.User{ID: "user-1", Email: "siti@example.com"}},
		MailerService:          mailerSvc,
		InternalConfig: &config.InternalConfig{
			App: config.App{ClinicEmail: "clinic@example.com"},
		},
		Log: zap.NewNop(),
	}
}

func deliveryFor(t *testing.T, ack *fakeAcknowledger, event *contracts.BookingEvent, redelivered bool) amqp091.Delivery {
	t.Helper()
	body, err := json.Marshal(event)
	assert.NoError(t, err)
	return amqp091.Delivery{Acknowledger: ack, Body: body, Redelivered: redelivered}
}

func TestHandleDelivery(t *testing.T) {
	bookingEvent := &contracts.BookingEvent{
		Type:            constvars.NotificationTypeNewBookingRequest,
		AppointmentID:   "appointment-1",
		PatientID:       "patient-1",
		PatientUserID:   "user-1",
		PatientName:     "Siti Rahma",
		ServiceName:     "Scaling",
		AppointmentDate: "2026-09-16",
		AppointmentTime: "10:00",
	}

	t.Run("New Booking Request Fans Out To Staff", func(t *testing.T) {
		repo := &fakeNotificationRepository{staffUserIDs: []string{"staff-user-1", "staff-user-2"}}
		mailerSvc := &fakeMailerService{}
		ack := &fakeAcknowledger{}

		newTestConsumer(repo, mailerSvc).handleDelivery(deliveryFor(t, ack, bookingEvent, false))

		assert.True(t, ack.acked)
		assert.Len(t, repo.created, 2, "every staff member gets a notification")
		assert.Equal(t, "staff-user-1", repo.created[0].UserID)
		assert.Equal(t, constvars.NotificationTypeNewBookingRequest, repo.created[0].Type)
		assert.Len(t, mailerSvc.sent, 1)
		assert.Equal(t, "clinic@example.com", mailerSvc.sent[0].ReceiverEmail)
	})

	t.Run("Status Change Notifies Patient", func(t *testing.T) {
		statusEvent := *bookingEvent
		statusEvent.Type = constvars.NotificationTypeConfirmed

		repo := &fakeNotificationRepository{}
		mailerSvc := &fakeMailerService{}
		ack := &fakeAcknowledger{}

		newTestConsumer(repo, mailerSvc).handleDelivery(deliveryFor(t, ack, &statusEvent, false))

		assert.True(t, ack.acked)
		assert.Len(t, repo.created, 1)
		assert.Equal(t, "user-1", repo.created[0].UserID)
		assert.Len(t, mailerSvc.sent, 1)
		assert.Equal(t, "siti@example.com", mailerSvc.sent[0].ReceiverEmail)
	})

	t.Run("Undecodable Message Is Dropped", func(t *testing.T) {
		ack := &fakeAcknowledger{}

		consumer := newTestConsumer(&fakeNotificationRepository{}, &fakeMailerService{})
		consumer.handleDelivery(amqp091.Delivery{Acknowledger: ack, Body: []byte("{not json")})

		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue, "a message that cannot decode must not loop")
	})

	t.Run("First Processing Failure Requeues", func(t *testing.T) {
		repo := &fakeNotificationRepository{staffUserIDs: []string{"staff-user-1"}, createErr: assert.AnError}
		ack := &fakeAcknowledger{}

		newTestConsumer(repo, &fakeMailerService{}).handleDelivery(deliveryFor(t, ack, bookingEvent, false))

		assert.True(t, ack.nacked)
		assert.True(t, ack.requeue, "a transient failure gets one more delivery")
	})

	t.Run("Redelivered Failure Is Dropped", func(t *testing.T) {
		repo := &fakeNotificationRepository{staffUserIDs: []string{"staff-user-1"}, createErr: assert.AnError}
		ack := &fakeAcknowledger{}

		newTestConsumer(repo, &fakeMailerService{}).handleDelivery(deliveryFor(t, ack, bookingEvent, true))

		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue, "a poison message must not be requeued forever")
	})
}
