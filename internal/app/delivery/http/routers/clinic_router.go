package routers

import (
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *controllers.ClinicController) {
	router.With(middlewares.Authenticate, middlewares.RequireSuperadmin).Get("/", clinicController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireSuperadmin).Post("/", clinicController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireClinicAccess).Get("/{clinic_id}", clinicController.FindByID)
	router.With(middlewares.Authenticate, middlewares.RequireSuperadmin).Patch("/{clinic_id}", clinicController.Update)
	router.With(middlewares.Authenticate, middlewares.RequireSuperadmin).Delete("/{clinic_id}", clinicController.Delete)
}
