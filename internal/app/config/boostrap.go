package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

// Shutdown releases every driver, newest first. All drivers are closed even
// when one of them fails; the failures are joined.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing RabbitMQ")
		}
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing Redis")
		}
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully disconnecting MongoDB")
		}
	}

	b.Logger.Sync()
	return errors.Join(errs...)
}
