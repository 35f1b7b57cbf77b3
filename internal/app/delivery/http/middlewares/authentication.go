package middlewares

import (
	"net/http"

	"clinic-dashboard-service/internal/pkg/constvars"
	"clinic-dashboard-service/internal/pkg/exceptions"
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a dashboard session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ParseBearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.SetSessionToContext(r.Context(), session)))
	})
}

func (m *Middlewares) RequireSuperadmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		if !session.IsSuperadmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSuperadminRequired())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireClinicAccess lets superadmins through and otherwise only the CEO the
// clinic in the URL belongs to.
func (m *Middlewares) RequireClinicAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		if session.IsSuperadmin {
			next.ServeHTTP(w, r)
			return
		}

		clinicID := chi.URLParam(r, constvars.URLParamClinicID)
		clinic, err := m.ClinicUsecase.FindByID(r.Context(), clinicID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if clinic.CEOID == "" || clinic.CEOID != session.UserID {
			m.Log.Info("Middlewares.RequireClinicAccess denied",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingSessionIDKey, session.SessionID),
				zap.String(constvars.LoggingClinicIDKey, clinicID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrClinicAccessDenied(clinicID))
			return
		}

		next.ServeHTTP(w, r)
	})
}
