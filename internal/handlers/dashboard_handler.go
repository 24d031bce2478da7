package handlers

import (
	"log"
	"net/http"

	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
	Templates *Templates
}

func NewDashboardHandler(dashboard *services.DashboardService, templates *Templates) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard, Templates: templates}
}

// DashboardPage handles GET /.
func (h *DashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.Summary(r.Context())
	if err != nil {
		log.Printf("[Dashboard] summary: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Summary  *services.DashboardSummary
		Statuses []string
	}{
		PageData: NewPageData(r, "Dashboard"),
		Summary:  summary,
		Statuses: lifecycle.Statuses,
	})
}
