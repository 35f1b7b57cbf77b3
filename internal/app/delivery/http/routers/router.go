package routers

import (
	"fmt"
	"time"

	"clinic-dashboard-service/internal/app/config"
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"
	"clinic-dashboard-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authRateLimiter *middlewares.RateLimiter,
	authController *controllers.AuthController,
	clinicController *controllers.ClinicController,
	staffController *controllers.StaffController,
	analyticsController *controllers.AnalyticsController,
	notificationController *controllers.NotificationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodPatch,
			constvars.MethodDelete,
			"OPTIONS",
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authRateLimiter, authController)
			})

			r.Route("/"+constvars.ResourceClinics, func(r chi.Router) {
				attachClinicRoutes(r, middlewares, clinicController)
				attachStaffRoutes(r, middlewares, staffController)
				attachClinicAnalyticsRoutes(r, middlewares, analyticsController)
			})

			r.Route("/"+constvars.ResourceAnalytics, func(r chi.Router) {
				attachAnalyticsRoutes(r, middlewares, analyticsController)
			})

			r.Route("/"+constvars.ResourceNotifications, func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})
		})
	})
}
