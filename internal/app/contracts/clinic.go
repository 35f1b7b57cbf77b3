package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/dto/requests"
)

type ClinicRepository interface {
	FindAll(ctx context.Context) ([]models.Clinic, error)
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	Create(ctx context.Context, clinic *models.Clinic) error
	Update(ctx context.Context, clinic *models.Clinic) error
	Delete(ctx context.Context, clinicID string) error
}

type ClinicUsecase interface {
	FindAll(ctx context.Context) ([]models.Clinic, error)
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	Create(ctx context.Context, request *requests.CreateClinic) (*models.Clinic, error)
	Update(ctx context.Context, clinicID string, request *requests.UpdateClinic) (*models.Clinic, error)
	Delete(ctx context.Context, clinicID string) error
}
