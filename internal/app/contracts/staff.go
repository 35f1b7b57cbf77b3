package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/dto/responses"
)

type StaffUsecase interface {
	List(ctx context.Context, session *models.Session, clinicID string, role Role) (*responses.StaffView, error)
	Add(ctx context.Context, session *models.Session, clinicID string, role Role, values map[string]string) (*models.Entity, error)
	Edit(ctx context.Context, session *models.Session, clinicID string, role Role, entityID string, values map[string]string) (*models.Entity, error)
	OpenDelete(ctx context.Context, session *models.Session, clinicID string, role Role, entityID string) (*responses.DeleteConfirmation, error)
	ConfirmDelete(ctx context.Context, session *models.Session, clinicID string, role Role) (*models.Entity, error)
	CancelDelete(ctx context.Context, session *models.Session, clinicID string, role Role) error
	DropWorkspace(sessionID string)
	EvictExpiredWorkspaces(ctx context.Context) int
}
