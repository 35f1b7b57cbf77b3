package routers

import (
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate, middlewares.RequireClinicAccess)

		r.Get("/{clinic_id}/staff/{role}", staffController.List)
		r.Post("/{clinic_id}/staff/{role}", staffController.Add)
		r.Patch("/{clinic_id}/staff/{role}/{entity_id}", staffController.Edit)
		r.Post("/{clinic_id}/staff/{role}/{entity_id}/delete", staffController.OpenDelete)
		r.Post("/{clinic_id}/staff/{role}/delete/confirm", staffController.ConfirmDelete)
		r.Post("/{clinic_id}/staff/{role}/delete/cancel", staffController.CancelDelete)
	})
}
