package routers

import (
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *controllers.NotificationController) {
	router.With(middlewares.Authenticate).Get("/", notificationController.Drain)
}
