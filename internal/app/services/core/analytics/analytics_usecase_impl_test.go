package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/app/services/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPatientBackend struct {
	mock.Mock
}

func (m *MockPatientBackend) FindByClinic(ctx context.Context, clinicID string) ([]models.PatientRecord, error) {
	args := m.Called(ctx, clinicID)
	records, _ := args.Get(0).([]models.PatientRecord)
	return records, args.Error(1)
}

type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) FindAll(ctx context.Context) ([]models.Clinic, error) {
	args := m.Called(ctx)
	clinics, _ := args.Get(0).([]models.Clinic)
	return clinics, args.Error(1)
}

func (m *MockClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	clinic, _ := args.Get(0).(*models.Clinic)
	return clinic, args.Error(1)
}

func (m *MockClinicRepository) Create(ctx context.Context, clinic *models.Clinic) error {
	return m.Called(ctx, clinic).Error(0)
}

func (m *MockClinicRepository) Update(ctx context.Context, clinic *models.Clinic) error {
	return m.Called(ctx, clinic).Error(0)
}

func (m *MockClinicRepository) Delete(ctx context.Context, clinicID string) error {
	return m.Called(ctx, clinicID).Error(0)
}

// countingOperations serves a fixed number of providers per clinic.
type countingOperations struct {
	perClinic map[string]int
	err       error
}

func (o countingOperations) Fetch(_ context.Context, clinicID string) ([]models.Entity, error) {
	if o.err != nil {
		return nil, o.err
	}
	return make([]models.Entity, o.perClinic[clinicID]), nil
}

func (o countingOperations) Add(context.Context, string, models.Entity) (*models.Entity, error) {
	return nil, nil
}

func (o countingOperations) Update(context.Context, string, string, models.Entity) (*models.Entity, error) {
	return nil, nil
}

func (o countingOperations) Delete(context.Context, string, string) error { return nil }

func newTestUsecase(patients contracts.PatientBackend, clinics contracts.ClinicRepository, ops contracts.EntityOperations) *analyticsUsecase {
	descriptors := make([]registry.Descriptor, 0, 4)
	for _, role := range contracts.AllRoles() {
		descriptors = append(descriptors, registry.Descriptor{Role: role, Operations: ops})
	}

	uc := NewAnalyticsUsecase(zap.NewNop(), patients, clinics, registry.MustNewRegistry(descriptors...), time.UTC).(*analyticsUsecase)
	uc.now = func() time.Time { return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestAnalyticsUsecase_ClinicAnalytics(t *testing.T) {
	patients := new(MockPatientBackend)
	patients.On("FindByClinic", mock.Anything, "clinic-1").Return([]models.PatientRecord{
		{ID: "p-1", BirthDate: "2019-06-15", ArrivedAt: time.Date(2024, time.March, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "p-2", BirthDate: "2018-06-16", ArrivedAt: time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)},
		{ID: "p-3", BirthDate: "1959-06-15", ArrivedAt: time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "p-4", BirthDate: "1958-06-15", ArrivedAt: time.Date(2023, time.April, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "p-5", BirthDate: "not-a-date"},
	}, nil)

	uc := newTestUsecase(patients, new(MockClinicRepository), countingOperations{})

	result, err := uc.ClinicAnalytics(context.Background(), "clinic-1", 0)
	require.NoError(t, err)

	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, 5, result.TotalPatients)
	// ages 5, 5, 65, 66
	assert.Equal(t, []int{2, 0, 0, 0, 1, 1}, result.AgeDemographics.Values)
	assert.Equal(t, []int{0}, result.AgeDemographics.Highlighted)
	assert.Equal(t, 2, result.Arrivals.Values[2])
	assert.Equal(t, 1, result.Arrivals.Values[3])
	assert.Equal(t, []int{2}, result.Arrivals.Highlighted)
}

func TestAnalyticsUsecase_ProviderCounts(t *testing.T) {
	clinics := new(MockClinicRepository)
	clinics.On("FindAll", mock.Anything).Return([]models.Clinic{
		{ID: "c-1", Name: "North"},
		{ID: "c-2", Name: "South"},
		{ID: "c-3", Name: "East"},
	}, nil)

	t.Run("Counts providers per clinic", func(t *testing.T) {
		uc := newTestUsecase(new(MockPatientBackend), clinics, countingOperations{perClinic: map[string]int{"c-1": 3, "c-2": 7, "c-3": 7}})

		chart, err := uc.ProviderCounts(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"North", "South", "East"}, chart.Labels)
		assert.Equal(t, []int{3, 7, 7}, chart.Values)
		assert.Equal(t, []int{1, 2}, chart.Highlighted)
	})

	t.Run("Backend failure", func(t *testing.T) {
		uc := newTestUsecase(new(MockPatientBackend), clinics, countingOperations{err: errors.New("backend down")})

		_, err := uc.ProviderCounts(context.Background())
		assert.Error(t, err)
	})
}
