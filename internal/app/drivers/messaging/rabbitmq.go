package messaging

import (
	"fmt"

	"clinic-dashboard-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker, or returns nil when staff events are disabled.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	if !driverConfig.RabbitMQ.Enabled {
		log.Info("RabbitMQ disabled, staff events will not be published")
		return nil
	}

	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatal("Failed to connect to rabbitMQ", zap.Error(err))
	}
	log.Info("Successfully connected to rabbitMQ")
	return conn
}
