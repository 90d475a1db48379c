package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	PostgresDB     *sql.DB
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ConsumerStop and WorkerStop, when set, are called during Shutdown to
	// stop the booking-event consumer and the reminder worker.
	ConsumerStop func()
	WorkerStop   func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ConsumerStop != nil {
		b.ConsumerStop()
		log.Println("Successfully stopped booking event consumer")
	}

	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped reminder worker")
	}

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.PostgresDB.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Postgres")

	b.Logger.Sync()
	return nil
}
