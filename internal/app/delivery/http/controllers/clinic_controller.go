package controllers

import (
	"net/http"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/dto/requests"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ClinicController struct {
	Log           *zap.Logger
	ClinicUsecase contracts.ClinicUsecase
}

func NewClinicController(logger *zap.Logger, clinicUsecase contracts.ClinicUsecase) *ClinicController {
	return &ClinicController{
		Log:           logger,
		ClinicUsecase: clinicUsecase,
	}
}

func (ctrl *ClinicController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.ClinicUsecase.FindAll(ctx)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicsSuccessMessage, result)
}

func (ctrl *ClinicController) FindByID(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	err := utils.ValidateUrlParamID(clinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamClinicID))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.ClinicUsecase.FindByID(ctx, clinicID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClinicSuccessMessage, result)
}

func (ctrl *ClinicController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateClinic)
	err := utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.ClinicUsecase.Create(ctx, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateClinicSuccessMessage, result)
}

func (ctrl *ClinicController) Update(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	err := utils.ValidateUrlParamID(clinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamClinicID))
		return
	}

	request := new(requests.UpdateClinic)
	err = utils.ParseJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.ClinicUsecase.Update(ctx, clinicID, request)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateClinicSuccessMessage, result)
}

func (ctrl *ClinicController) Delete(w http.ResponseWriter, r *http.Request) {
	clinicID := chi.URLParam(r, constvars.URLParamClinicID)
	err := utils.ValidateUrlParamID(clinicID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamClinicID))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	err = ctrl.ClinicUsecase.Delete(ctx, clinicID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteClinicSuccessMessage, nil)
}
