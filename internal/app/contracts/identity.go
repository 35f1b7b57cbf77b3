package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
)

type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*models.Identity, error)
	CreateCredential(ctx context.Context, email, password string) (*models.Identity, error)
	SendVerificationEmail(ctx context.Context, identity *models.Identity) error
	SendPasswordReset(ctx context.Context, email string) error
}
