package notifications

import (
	"context"
	"fmt"

	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingEventConsumer drains the booking queue and fans each event out into
// notification rows and an email. New booking requests go to every staff
// member plus the clinic mailbox; status changes go to the patient.
type BookingEventConsumer struct {
	Connection             *amqp091.Connection
	NotificationRepository contracts.NotificationRepository
	UserRepository         contracts.UserRepository
	MailerService          contracts.MailerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewBookingEventConsumer(
	connection *amqp091.Connection,
	notificationRepository contracts.NotificationRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *BookingEventConsumer {
	return &BookingEventConsumer{
		Connection:             connection,
		NotificationRepository: notificationRepository,
		UserRepository:         userRepository,
		MailerService:          mailerService,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// Start begins consuming in a background goroutine and returns a stop
// function that closes the channel and waits for the loop to drain.
func (c *BookingEventConsumer) Start() (func(), error) {
	channel, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	queueName := c.InternalConfig.App.RabbitMQBookingQueue
	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}

	deliveries, err := channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for delivery := range deliveries {
			c.handleDelivery(delivery)
		}
	}()

	c.Log.Info("booking event consumer started",
		zap.String(constvars.LoggingQueueKey, queueName),
	)
	return func() {
		channel.Close()
		<-done
	}, nil
}

func (c *BookingEventConsumer) handleDelivery(delivery amqp091.Delivery) {
	ctx := context.Background()

	var event contracts.BookingEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		c.Log.Error("failed to decode booking event, dropping message", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	var err error
	switch event.Type {
	case constvars.NotificationTypeNewBookingRequest:
		err = c.handleNewBookingRequest(ctx, &event)
	default:
		err = c.handleStatusChange(ctx, &event)
	}
	if err != nil {
		// One redelivery covers transient failures; a second failure means
		// the event itself is bad, and requeueing it again would loop forever.
		if delivery.Redelivered {
			c.Log.Error("dropping booking event after failed redelivery",
				zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
				zap.String("event_type", event.Type),
				zap.Error(err),
			)
			delivery.Nack(false, false)
			return
		}
		c.Log.Error("failed to process booking event, requeueing once",
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.String("event_type", event.Type),
			zap.Error(err),
		)
		delivery.Nack(false, true)
		return
	}
	delivery.Ack(false)
}

func (c *BookingEventConsumer) handleNewBookingRequest(ctx context.Context, event *contracts.BookingEvent) error {
	payload := fmt.Sprintf("%s requested %s on %s at %s",
		event.PatientName, event.ServiceName, event.AppointmentDate, event.AppointmentTime)

	staffUserIDs, err := c.NotificationRepository.FindStaffUserIDs(ctx)
	if err != nil {
		return err
	}
	for _, userID := range staffUserIDs {
		_, err := c.NotificationRepository.CreateNotification(ctx, &models.Notification{
			UserID:  userID,
			Type:    constvars.NotificationTypeNewBookingRequest,
			Payload: payload,
		})
		if err != nil {
			return err
		}
	}

	err = c.MailerService.SendEmail(ctx, &requests.EmailPayload{
		ReceiverEmail: c.InternalConfig.App.ClinicEmail,
		Subject:       "New booking request",
		Body:          payload,
	})
	if err != nil {
		// The notifications are already written; a mail failure is not
		// worth requeueing the whole event for.
		c.Log.Warn("failed to email clinic about new booking request",
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
	return nil
}

func (c *BookingEventConsumer) handleStatusChange(ctx context.Context, event *contracts.BookingEvent) error {
	payload := fmt.Sprintf("Your appointment for %s on %s at %s is now %s",
		event.ServiceName, event.AppointmentDate, event.AppointmentTime, event.Type)

	_, err := c.NotificationRepository.CreateNotification(ctx, &models.Notification{
		UserID:  event.PatientUserID,
		Type:    event.Type,
		Payload: payload,
	})
	if err != nil {
		return err
	}

	user, err := c.UserRepository.FindUserByID(ctx, event.PatientUserID)
	if err != nil {
		c.Log.Warn("failed to resolve patient email for status change",
			zap.String(constvars.LoggingUserIDKey, event.PatientUserID),
			zap.Error(err),
		)
		return nil
	}

	err = c.MailerService.SendEmail(ctx, &requests.EmailPayload{
		ReceiverEmail: user.Email,
		Subject:       fmt.Sprintf("Appointment %s", event.Type),
		Body:          payload,
	})
	if err != nil {
		c.Log.Warn("failed to email patient about status change",
			zap.String(constvars.LoggingUserIDKey, event.PatientUserID),
			zap.Error(err),
		)
	}
	return nil
}
