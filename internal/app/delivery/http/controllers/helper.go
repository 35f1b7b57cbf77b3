package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), constvars.DefaultRequestTimeoutInSeconds*time.Second)
}

func buildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
