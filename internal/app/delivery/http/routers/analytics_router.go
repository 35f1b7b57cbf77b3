package routers

import (
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.With(middlewares.Authenticate, middlewares.RequireClinicAccess).Get("/{clinic_id}/analytics", analyticsController.ClinicAnalytics)
}

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.With(middlewares.Authenticate, middlewares.RequireSuperadmin).Get("/providers", analyticsController.ProviderCounts)
}
