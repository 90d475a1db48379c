package messaging

import (
	"context"
	"sync"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type bookingEventPublisher struct {
	channel   *amqp091.Channel
	queueName string
	log       *zap.Logger
}

var (
	bookingEventPublisherInstance contracts.BookingEventPublisher
	onceBookingEventPublisher     sync.Once
)

func NewBookingEventPublisher(conn *amqp091.Connection, queueName string, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	var initErr error
	onceBookingEventPublisher.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}
		_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
		if err != nil {
			initErr = err
			return
		}
		bookingEventPublisherInstance = &bookingEventPublisher{
			channel:   channel,
			queueName: queueName,
			log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return bookingEventPublisherInstance, nil
}

func (p *bookingEventPublisher) PublishBookingEvent(ctx context.Context, event *contracts.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("booking event published",
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.String("event_type", event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
