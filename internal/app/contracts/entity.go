package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
)

// EntityOperations is the remote capability set of one role, scoped by clinic.
type EntityOperations interface {
	Fetch(ctx context.Context, clinicID string) ([]models.Entity, error)
	Add(ctx context.Context, clinicID string, entity models.Entity) (*models.Entity, error)
	Update(ctx context.Context, clinicID, entityID string, entity models.Entity) (*models.Entity, error)
	Delete(ctx context.Context, clinicID, entityID string) error
}
