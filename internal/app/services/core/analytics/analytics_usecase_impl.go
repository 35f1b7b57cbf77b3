package analytics

import (
	"context"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/app/services/core/registry"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/dto/responses"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const birthDateLayout = "2006-01-02"

type analyticsUsecase struct {
	Log              *zap.Logger
	PatientBackend   contracts.PatientBackend
	ClinicRepository contracts.ClinicRepository
	Registry         *registry.Registry
	Location         *time.Location
	now              func() time.Time
}

func NewAnalyticsUsecase(
	logger *zap.Logger,
	patientBackend contracts.PatientBackend,
	clinicRepository contracts.ClinicRepository,
	entityRegistry *registry.Registry,
	location *time.Location,
) contracts.AnalyticsUsecase {
	if location == nil {
		location = time.UTC
	}
	return &analyticsUsecase{
		Log:              logger,
		PatientBackend:   patientBackend,
		ClinicRepository: clinicRepository,
		Registry:         entityRegistry,
		Location:         location,
		now:              time.Now,
	}
}

// ClinicAnalytics aggregates the patients of a clinic into age buckets and
// monthly arrivals of year. A zero year means the current one.
func (uc *analyticsUsecase) ClinicAnalytics(ctx context.Context, clinicID string, year int) (*responses.ClinicAnalytics, error) {
	requestID := utils.GetRequestID(ctx)
	now := uc.now().In(uc.Location)
	if year == 0 {
		year = now.Year()
	}

	var records []models.PatientRecord
	err := utils.TraceRemoteCall(ctx, uc.Log, "analyticsUsecase.ClinicAnalytics.FindByClinic", func() (err error) {
		records, err = uc.PatientBackend.FindByClinic(ctx, clinicID)
		return err
	}, zap.String(constvars.LoggingClinicIDKey, clinicID))
	if err != nil {
		return nil, err
	}

	ages := make([]int, 0, len(records))
	for _, record := range records {
		birthDate, err := time.ParseInLocation(birthDateLayout, record.BirthDate, uc.Location)
		if err != nil {
			uc.Log.Debug("analyticsUsecase.ClinicAnalytics skipped patient without a valid birth date",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, record.ID),
			)
			continue
		}
		ages = append(ages, utils.CalculateAge(birthDate, now))
	}

	ageCounts := CountAgeBuckets(ages)
	arrivals := CountArrivalsByMonth(records, year, uc.Location)

	uc.Log.Info("analyticsUsecase.ClinicAnalytics succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)

	return &responses.ClinicAnalytics{
		ClinicID:      clinicID,
		Year:          year,
		TotalPatients: len(records),
		AgeDemographics: responses.Chart{
			Labels:      AgeBucketLabels,
			Values:      ageCounts,
			Highlighted: HighlightMax(ageCounts),
		},
		Arrivals: responses.Chart{
			Labels:      MonthLabels,
			Values:      arrivals,
			Highlighted: HighlightMax(arrivals),
		},
	}, nil
}

// ProviderCounts counts the providers of every clinic.
func (uc *analyticsUsecase) ProviderCounts(ctx context.Context) (*responses.Chart, error) {
	clinics, err := uc.ClinicRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	providers, err := uc.Registry.Resolve(contracts.RoleProvider)
	if err != nil {
		return nil, err
	}

	chart := &responses.Chart{
		Labels: make([]string, 0, len(clinics)),
		Values: make([]int, 0, len(clinics)),
	}
	for _, clinic := range clinics {
		var entities []models.Entity
		err := utils.TraceRemoteCall(ctx, uc.Log, "analyticsUsecase.ProviderCounts.Fetch", func() (err error) {
			entities, err = providers.Operations.Fetch(ctx, clinic.ID)
			return err
		}, zap.String(constvars.LoggingClinicIDKey, clinic.ID))
		if err != nil {
			return nil, err
		}
		chart.Labels = append(chart.Labels, clinic.Name)
		chart.Values = append(chart.Values, len(entities))
	}
	chart.Highlighted = HighlightMax(chart.Values)

	return chart, nil
}
