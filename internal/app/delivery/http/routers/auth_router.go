package routers

import (
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, rateLimiter *middlewares.RateLimiter, authController *controllers.AuthController) {
	router.With(rateLimiter.Limit).Post("/login", authController.Login)
	router.With(rateLimiter.Limit).Post("/password-reset", authController.SendPasswordReset)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
