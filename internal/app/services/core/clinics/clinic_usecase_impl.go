package clinics

import (
	"context"
	"time"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/dto/requests"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type clinicUsecase struct {
	Log              *zap.Logger
	ClinicRepository contracts.ClinicRepository
	now              func() time.Time
}

func NewClinicUsecase(logger *zap.Logger, clinicRepository contracts.ClinicRepository) contracts.ClinicUsecase {
	return &clinicUsecase{
		Log:              logger,
		ClinicRepository: clinicRepository,
		now:              time.Now,
	}
}

func (uc *clinicUsecase) FindAll(ctx context.Context) ([]models.Clinic, error) {
	return uc.ClinicRepository.FindAll(ctx)
}

func (uc *clinicUsecase) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	return uc.ClinicRepository.FindByID(ctx, clinicID)
}

func (uc *clinicUsecase) Create(ctx context.Context, request *requests.CreateClinic) (*models.Clinic, error) {
	now := uc.now().UTC()
	clinic := &models.Clinic{
		ID:        uuid.NewString(),
		Name:      request.Name,
		Address:   request.Address,
		Phone:     request.Phone,
		CEOID:     request.CEOID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.ClinicRepository.Create(ctx, clinic)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("clinicUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClinicIDKey, clinic.ID),
	)
	return clinic, nil
}

func (uc *clinicUsecase) Update(ctx context.Context, clinicID string, request *requests.UpdateClinic) (*models.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		clinic.Name = *request.Name
	}
	if request.Address != nil {
		clinic.Address = *request.Address
	}
	if request.Phone != nil {
		clinic.Phone = *request.Phone
	}
	if request.CEOID != nil {
		clinic.CEOID = *request.CEOID
	}
	clinic.UpdatedAt = uc.now().UTC()

	err = uc.ClinicRepository.Update(ctx, clinic)
	if err != nil {
		return nil, err
	}
	return clinic, nil
}

func (uc *clinicUsecase) Delete(ctx context.Context, clinicID string) error {
	err := uc.ClinicRepository.Delete(ctx, clinicID)
	if err != nil {
		return err
	}

	uc.Log.Info("clinicUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)
	return nil
}
