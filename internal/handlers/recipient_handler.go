package handlers

import (
	"log"
	"net/http"

	"ewaste-tracker/internal/models"
	"ewaste-tracker/internal/services"
)

type RecipientHandler struct {
	Recipients *services.RecipientService
	Templates  *Templates
}

func NewRecipientHandler(recipients *services.RecipientService, templates *Templates) *RecipientHandler {
	return &RecipientHandler{Recipients: recipients, Templates: templates}
}

// RecipientsPage handles GET /recipients.
func (h *RecipientHandler) RecipientsPage(w http.ResponseWriter, r *http.Request) {
	recipients, err := h.Recipients.List(r.Context())
	if err != nil {
		log.Printf("[Recipients] list: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.Templates.Render(w, "recipients.html", &struct {
		PageData
		Recipients []*models.Recipient
	}{
		PageData:   NewPageData(r, "Recipients"),
		Recipients: recipients,
	})
}

// CreateRecipient handles POST /recipients.
func (h *RecipientHandler) CreateRecipient(w http.ResponseWriter, r *http.Request) {
	rec := &models.Recipient{
		Name:        r.FormValue("name"),
		ContactName: r.FormValue("contact_name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Notes:       r.FormValue("notes"),
	}

	if err := h.Recipients.Create(r.Context(), rec); err != nil {
		if services.IsValidation(err) {
			redirectError(w, r, "/recipients", err.Error())
			return
		}
		log.Printf("[Recipients] create: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	redirectSuccess(w, r, "/recipients", "Recipient added.")
}
