package contracts

import (
	"context"
	"time"

	"clinic-dashboard-service/internal/app/models"
)

type SessionService interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
