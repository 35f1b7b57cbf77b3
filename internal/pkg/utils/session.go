package utils

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
)

func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}

func SetSessionToContext(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}
