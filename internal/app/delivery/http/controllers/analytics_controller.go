package controllers

import (
	"net/http"
	"strconv"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	return &AnalyticsController{
		Log:              logger,
		AnalyticsUsecase: analyticsUsecase,
	}
}

func (ctrl *AnalyticsController) ClinicAnalytics(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)

	var year int
	if yearStr := r.URL.Query().Get(constvars.QueryParamYear); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed <= 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.QueryParamYear))
			return
		}
		year = parsed
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.ClinicAnalytics(ctx, clinicID, year)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAnalyticsSuccessMessage, result)
}

func (ctrl *AnalyticsController) ProviderCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.AnalyticsUsecase.ProviderCounts(ctx)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProviderAnalyticsSuccessMessage, result)
}
