package notifier

import (
	"context"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type notifier struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	DisplayDuration time.Duration
	now             func() time.Time
}

// NewNotifier stores toasts per session in a redis list that lives as long as
// the newest toast is displayed.
func NewNotifier(logger *zap.Logger, redisRepository contracts.RedisRepository, displayDuration time.Duration) contracts.Notifier {
	return &notifier{
		Log:             logger,
		RedisRepository: redisRepository,
		DisplayDuration: displayDuration,
		now:             time.Now,
	}
}

func (n *notifier) Notify(ctx context.Context, sessionID string, level models.NotificationLevel, message string) error {
	createdAt := n.now()
	notification := models.Notification{
		Level:     level,
		Message:   message,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(n.DisplayDuration),
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	key := constvars.RedisKeyNotificationPrefix + sessionID
	err = n.RedisRepository.PushToList(ctx, key, string(payload))
	if err != nil {
		return err
	}

	n.Log.Debug("notifier.Notify queued toast",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingLevelKey, string(level)),
	)

	return n.RedisRepository.Expire(ctx, key, n.DisplayDuration)
}

// Drain hands out every toast still on display and clears the session list.
// Toasts pushed while draining are kept for the next call.
func (n *notifier) Drain(ctx context.Context, sessionID string) ([]models.Notification, error) {
	key := constvars.RedisKeyNotificationPrefix + sessionID
	items, err := n.RedisRepository.PopList(ctx, key)
	if err != nil {
		return nil, err
	}

	now := n.now()
	notifications := make([]models.Notification, 0, len(items))
	for _, item := range items {
		var notification models.Notification
		if err := json.Unmarshal([]byte(item), &notification); err != nil {
			n.Log.Warn("notifier.Drain skipping malformed toast", zap.Error(err))
			continue
		}
		if now.After(notification.ExpiresAt) {
			continue
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}
