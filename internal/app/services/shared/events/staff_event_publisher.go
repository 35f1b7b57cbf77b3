package events

import (
	"context"
	"sync"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the part of *amqp091.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type staffEventPublisher struct {
	mu      sync.Mutex
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

// NewStaffEventPublisher declares the durable queue and publishes into it.
// A nil connection yields a publisher that only logs.
func NewStaffEventPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.EventPublisher, error) {
	if rabbitMQConnection == nil {
		return &logOnlyPublisher{Log: logger}, nil
	}

	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &staffEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *staffEventPublisher) Publish(ctx context.Context, event models.StaffEvent) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Event,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("staffEventPublisher.Publish error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event.Event),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("staffEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingEntityIDKey, event.EntityID),
	)
	return nil
}

type logOnlyPublisher struct {
	Log *zap.Logger
}

func (p *logOnlyPublisher) Publish(ctx context.Context, event models.StaffEvent) error {
	p.Log.Debug("staff event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingClinicIDKey, event.ClinicID),
		zap.String(constvars.LoggingEntityIDKey, event.EntityID),
	)
	return nil
}
