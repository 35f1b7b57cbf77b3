package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in a handler into a 500 response. A panic with
// http.ErrAbortHandler is rethrown so the server can abort the connection.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			m.Log.Error("Middlewares.ErrorHandler recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.ByteString("stack", debug.Stack()),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrPanicRecovered(err))
		}()
		next.ServeHTTP(w, r)
	})
}
