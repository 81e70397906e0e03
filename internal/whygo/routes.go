package whygo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes covers the goal tiers; outcome routes are composed at the router
// level together with the progress handlers.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/company/dashboard", h.CompanyDashboard)
	r.Get("/departments", h.ListDepartments)
	r.Get("/departments/{id}/dashboard", h.DepartmentDashboard)
	r.Get("/individuals/{personId}/goals", h.ListIndividualGoals)
	r.Post("/individuals/goals", h.CreateIndividualGoal)
	r.Post("/individuals/goals/{id}/approve", h.ApproveIndividualGoal)

	return r
}
