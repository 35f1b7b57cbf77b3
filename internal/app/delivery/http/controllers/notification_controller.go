package controllers

import (
	"net/http"

	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type NotificationController struct {
	Log      *zap.Logger
	Notifier contracts.Notifier
}

func NewNotificationController(logger *zap.Logger, notifier contracts.Notifier) *NotificationController {
	return &NotificationController{
		Log:      logger,
		Notifier: notifier,
	}
}

// Drain hands the pending toasts of the session to the dashboard once.
func (ctrl *NotificationController) Drain(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := requestContext(r)
	defer cancel()

	result, err := ctrl.Notifier.Drain(ctx, session.SessionID)
	if err != nil {
		buildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccessMessage, result)
}
