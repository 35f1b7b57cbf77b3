package middlewares

import (
	"clinic-dashboard-service/internal/app/config"
	"clinic-dashboard-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	ClinicUsecase  contracts.ClinicUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, clinicUsecase contracts.ClinicUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AuthUsecase:    authUsecase,
		ClinicUsecase:  clinicUsecase,
		InternalConfig: internalConfig,
	}
}
