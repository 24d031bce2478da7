package handlers

import (
	"log"
	"net/http"

	"ewaste-tracker/internal/models"
	"ewaste-tracker/internal/services"
)

type DonorHandler struct {
	Donors    *services.DonorService
	Templates *Templates
}

func NewDonorHandler(donors *services.DonorService, templates *Templates) *DonorHandler {
	return &DonorHandler{Donors: donors, Templates: templates}
}

// DonorsPage handles GET /donors.
func (h *DonorHandler) DonorsPage(w http.ResponseWriter, r *http.Request) {
	donors, err := h.Donors.List(r.Context())
	if err != nil {
		log.Printf("[Donors] list: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.Templates.Render(w, "donors.html", &struct {
		PageData
		Donors []*models.Donor
	}{
		PageData: NewPageData(r, "Donors"),
		Donors:   donors,
	})
}

// CreateDonor handles POST /donors.
func (h *DonorHandler) CreateDonor(w http.ResponseWriter, r *http.Request) {
	d := &models.Donor{
		Name:        r.FormValue("name"),
		ContactName: r.FormValue("contact_name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Notes:       r.FormValue("notes"),
	}

	if err := h.Donors.Create(r.Context(), d); err != nil {
		if services.IsValidation(err) {
			redirectError(w, r, "/donors", err.Error())
			return
		}
		log.Printf("[Donors] create: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	redirectSuccess(w, r, "/donors", "Donor added.")
}
