package utils

import (
	"context"
	"time"

	"clinic-dashboard-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// TraceRemoteCall runs call and logs its outcome and latency under the request
// id carried by ctx. The error of call is returned untouched.
func TraceRemoteCall(ctx context.Context, logger *zap.Logger, operation string, call func() error, fields ...zap.Field) error {
	start := time.Now()
	err := call()

	fields = append(fields,
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	)
	if err != nil {
		logger.Error("Remote call failed", append(fields, zap.Error(err))...)
		return err
	}

	logger.Debug("Remote call completed", fields...)
	return nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
