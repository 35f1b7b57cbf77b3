package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
)

type Notifier interface {
	Notify(ctx context.Context, sessionID string, level models.NotificationLevel, message string) error
	Drain(ctx context.Context, sessionID string) ([]models.Notification, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.StaffEvent) error
}
