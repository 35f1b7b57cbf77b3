package contracts

import (
	"context"

	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/dto/responses"
)

type PatientBackend interface {
	FindByClinic(ctx context.Context, clinicID string) ([]models.PatientRecord, error)
}

type AnalyticsUsecase interface {
	ClinicAnalytics(ctx context.Context, clinicID string, year int) (*responses.ClinicAnalytics, error)
	ProviderCounts(ctx context.Context) (*responses.Chart, error)
}
