package controllers

import (
	"fmt"
	"net/http"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/models"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/dto/requests"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffController struct {
	Log          *zap.Logger
	StaffUsecase contracts.StaffUsecase
}

func NewStaffController(logger *zap.Logger, staffUsecase contracts.StaffUsecase) *StaffController {
	return &StaffController{
		Log:          logger,
		StaffUsecase: staffUsecase,
	}
}

// List renders the staff table. A failed fetch still answers 200 with the
// error state and the rows kept from the last successful load.
func (ctrl *StaffController) List(w http.ResponseWriter, r *http.Request) {
	session, clinicID, role, ok := ctrl.parseScope(w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.StaffUsecase.List(ctx, session, clinicID, role)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStaffSuccessMessage, result)
}

func (ctrl *StaffController) Add(w http.ResponseWriter, r *http.Request) {
	session, clinicID, role, ok := ctrl.parseScope(w, r)
	if !ok {
		return
	}

	values, ok := ctrl.parseForm(w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.StaffUsecase.Add(ctx, session, clinicID, role, values)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.CreateStaffSuccessMessage, role.Label()), result)
}

func (ctrl *StaffController) Edit(w http.ResponseWriter, r *http.Request) {
	session, clinicID, role, ok := ctrl.parseScope(w, r)
	if !ok {
		return
	}
	entityID := chi.URLParam(r, constvars.URLParamEntityID)

	values, ok := ctrl.parseForm(w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.StaffUsecase.Edit(ctx, session, clinicID, role, entityID, values)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.UpdateStaffSuccessMessage, role.Label()), result)
}

func (ctrl *StaffController) OpenDelete(w http.ResponseWriter, r *http.Request) {
	session, clinicID, role, ok := ctrl.parseScope(w, r)
	if !ok {
		return
	}
	entityID := chi.URLParam(r, constvars.URLParamEntityID)

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.StaffUsecase.OpenDelete(ctx, session, clinicID, role, entityID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteConfirmationOpenedMessage, result)
}

func (ctrl *StaffController) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	session, clinicID, role, ok := ctrl.parseScope(w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.StaffUsecase.ConfirmDelete(ctx, session, clinicID, role)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.DeleteStaffSuccessMessage, role.Label()), result)
}

func (ctrl *StaffController) CancelDelete(w http.ResponseWriter, r *http.Request) {
	session, clinicID, role, ok := ctrl.parseScope(w, r)
	if !ok {
		return
	}

	err := ctrl.StaffUsecase.CancelDelete(r.Context(), session, clinicID, role)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteConfirmationCancelledMessage, nil)
}

func (ctrl *StaffController) parseScope(w http.ResponseWriter, r *http.Request) (*models.Session, string, contracts.Role, bool) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return nil, "", 0, false
	}

	path := requests.StaffPath{
		ClinicID: chi.URLParam(r, constvars.URLParamClinicID),
		Role:     chi.URLParam(r, constvars.URLParamRole),
	}
	err := utils.ValidateStruct(path)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, "", 0, false
	}

	role, err := contracts.ParseRole(path.Role)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownRole(path.Role))
		return nil, "", 0, false
	}

	return session, path.ClinicID, role, true
}

// parseForm keeps only the fields the user actually sent.
func (ctrl *StaffController) parseForm(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	form := new(requests.StaffForm)
	err := utils.ParseJSONBody(r, form)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}

	values := map[string]string{}
	fields := map[string]*string{
		contracts.FieldName:       form.Name,
		contracts.FieldEmail:      form.Email,
		contracts.FieldPassword:   form.Password,
		contracts.FieldDomain:     form.Domain,
		contracts.FieldRoomNumber: form.RoomNumber,
	}
	for name, value := range fields {
		if value != nil {
			values[name] = *value
		}
	}
	return values, true
}
