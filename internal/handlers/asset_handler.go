package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ewaste-tracker/internal/lifecycle"
	"ewaste-tracker/internal/metrics"
	"ewaste-tracker/internal/models"
	"ewaste-tracker/internal/services"
)

type AssetHandler struct {
	Assets     *services.AssetService
	Donors     *services.DonorService
	Recipients *services.RecipientService
	Templates  *Templates
}

func NewAssetHandler(
	assets *services.AssetService,
	donors *services.DonorService,
	recipients *services.RecipientService,
	templates *Templates,
) *AssetHandler {
	return &AssetHandler{Assets: assets, Donors: donors, Recipients: recipients, Templates: templates}
}

// ListAssets handles GET /assets with optional status, donor and search
// filters.
func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AssetFilter{
		Status: q.Get("status"),
		Search: q.Get("q"),
	}
	if donor := q.Get("donor"); donor != "" {
		id, err := strconv.Atoi(donor)
		if err != nil {
			redirectError(w, r, "/assets", "Invalid donor filter provided.")
			return
		}
		filter.DonorID = id
	}

	assets, err := h.Assets.List(r.Context(), filter)
	if err != nil {
		if services.IsValidation(err) {
			redirectError(w, r, "/assets", err.Error())
			return
		}
		log.Printf("[Assets] list: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	donors, err := h.Donors.List(r.Context())
	if err != nil {
		log.Printf("[Assets] listing donors: %v", err)
	}

	h.Templates.Render(w, "assets_list.html", &struct {
		PageData
		Assets         []*models.Asset
		Donors         []*models.Donor
		Statuses       []string
		SelectedStatus string
		SelectedDonor  string
		Search         string
	}{
		PageData:       NewPageData(r, "Assets"),
		Assets:         assets,
		Donors:         donors,
		Statuses:       lifecycle.Statuses,
		SelectedStatus: filter.Status,
		SelectedDonor:  q.Get("donor"),
		Search:         filter.Search,
	})
}

// NewAssetForm handles GET /assets/new.
func (h *AssetHandler) NewAssetForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, nil)
}

// CreateAsset handles POST /assets/new.
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	a, err := h.Assets.Create(r.Context(), assetInputFromForm(r))
	if err != nil {
		if services.IsValidation(err) {
			redirectError(w, r, "/assets/new", err.Error())
			return
		}
		log.Printf("[Assets] create: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	redirectSuccess(w, r, fmt.Sprintf("/assets/%d", a.ID), "Asset created successfully.")
}

// AssetDetail handles GET /assets/{id}.
func (h *AssetHandler) AssetDetail(w http.ResponseWriter, r *http.Request) {
	a, ok := h.loadAsset(w, r)
	if !ok {
		return
	}

	history, err := h.Assets.History(r.Context(), a.ID)
	if err != nil {
		log.Printf("[Assets] history for %d: %v", a.ID, err)
	}
	recipients, err := h.Recipients.List(r.Context())
	if err != nil {
		log.Printf("[Assets] listing recipients: %v", err)
	}

	h.Templates.Render(w, "asset_detail.html", &struct {
		PageData
		Asset      *models.Asset
		History    []*models.AssetLog
		Recipients []*models.Recipient
		Statuses   []string
	}{
		PageData:   NewPageData(r, a.Tag),
		Asset:      a,
		History:    history,
		Recipients: recipients,
		Statuses:   lifecycle.Statuses,
	})
}

// EditAssetForm handles GET /assets/{id}/edit.
func (h *AssetHandler) EditAssetForm(w http.ResponseWriter, r *http.Request) {
	a, ok := h.loadAsset(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, a)
}

// UpdateAsset handles POST /assets/{id}/edit.
func (h *AssetHandler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id, ok := assetID(w, r)
	if !ok {
		return
	}

	a, err := h.Assets.Update(r.Context(), id, assetInputFromForm(r))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.NotFound(w, r)
		case services.IsValidation(err):
			redirectError(w, r, fmt.Sprintf("/assets/%d/edit", id), err.Error())
		default:
			log.Printf("[Assets] update %d: %v", id, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}
	redirectSuccess(w, r, fmt.Sprintf("/assets/%d", a.ID), "Asset updated successfully.")
}

// UpdateStatus handles POST /assets/{id}/status.
func (h *AssetHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := assetID(w, r)
	if !ok {
		return
	}

	upd := services.StatusUpdate{
		Status:      r.FormValue("status"),
		Note:        r.FormValue("note"),
		RecordedBy:  r.FormValue("recorded_by"),
		Location:    r.FormValue("location"),
		DonorID:     r.FormValue("donor_id"),
		RecipientID: r.FormValue("recipient_id"),
	}

	a, err := h.Assets.RecordEvent(r.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.NotFound(w, r)
		case services.IsValidation(err):
			redirectError(w, r, fmt.Sprintf("/assets/%d", id), err.Error())
		default:
			log.Printf("[Assets] status update %d: %v", id, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	metrics.AssetEventsTotal.WithLabelValues(a.Status).Inc()
	redirectSuccess(w, r, fmt.Sprintf("/assets/%d", a.ID), "Asset status updated.")
}

func (h *AssetHandler) renderForm(w http.ResponseWriter, r *http.Request, a *models.Asset) {
	donors, err := h.Donors.List(r.Context())
	if err != nil {
		log.Printf("[Assets] listing donors: %v", err)
	}
	recipients, err := h.Recipients.List(r.Context())
	if err != nil {
		log.Printf("[Assets] listing recipients: %v", err)
	}

	title := "New asset"
	action := "/assets/new"
	submit := "Create asset"
	if a != nil {
		title = "Edit " + a.Tag
		action = fmt.Sprintf("/assets/%d/edit", a.ID)
		submit = "Save changes"
	}

	h.Templates.Render(w, "asset_form.html", &struct {
		PageData
		Asset       *models.Asset
		Donors      []*models.Donor
		Recipients  []*models.Recipient
		Statuses    []string
		FormAction  string
		SubmitLabel string
	}{
		PageData:    NewPageData(r, title),
		Asset:       a,
		Donors:      donors,
		Recipients:  recipients,
		Statuses:    lifecycle.Statuses,
		FormAction:  action,
		SubmitLabel: submit,
	})
}

func (h *AssetHandler) loadAsset(w http.ResponseWriter, r *http.Request) (*models.Asset, bool) {
	id, ok := assetID(w, r)
	if !ok {
		return nil, false
	}

	a, err := h.Assets.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		log.Printf("[Assets] get %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return a, true
}

func assetID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func assetInputFromForm(r *http.Request) services.AssetInput {
	return services.AssetInput{
		Tag:          r.FormValue("tag"),
		AssetType:    r.FormValue("asset_type"),
		Brand:        r.FormValue("brand"),
		Model:        r.FormValue("model"),
		SerialNumber: r.FormValue("serial_number"),
		Condition:    r.FormValue("condition"),
		Status:       r.FormValue("status"),
		Location:     r.FormValue("location"),
		AcquiredDate: r.FormValue("acquired_date"),
		WeightKg:     r.FormValue("weight_kg"),
		Notes:        r.FormValue("notes"),
		DonorID:      r.FormValue("donor_id"),
		RecipientID:  r.FormValue("recipient_id"),
	}
}
