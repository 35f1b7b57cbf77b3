package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/dto/requests"
	"clinic-dashboard-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	SendPasswordReset(ctx context.Context, request *requests.PasswordReset) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
