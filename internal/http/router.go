package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ewaste-tracker/internal/handlers"
	"ewaste-tracker/web"
)

func NewRouter(
	dashboardHandler *handlers.DashboardHandler,
	assetHandler *handlers.AssetHandler,
	donorHandler *handlers.DonorHandler,
	recipientHandler *handlers.RecipientHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Serve embedded static files
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(web.StaticFS()))))

	r.HandleFunc("/", dashboardHandler.DashboardPage).Methods("GET")

	r.HandleFunc("/assets", assetHandler.ListAssets).Methods("GET")
	r.HandleFunc("/assets/new", assetHandler.NewAssetForm).Methods("GET")
	r.HandleFunc("/assets/new", assetHandler.CreateAsset).Methods("POST")
	r.HandleFunc("/assets/{id:[0-9]+}", assetHandler.AssetDetail).Methods("GET")
	r.HandleFunc("/assets/{id:[0-9]+}/edit", assetHandler.EditAssetForm).Methods("GET")
	r.HandleFunc("/assets/{id:[0-9]+}/edit", assetHandler.UpdateAsset).Methods("POST")
	r.HandleFunc("/assets/{id:[0-9]+}/status", assetHandler.UpdateStatus).Methods("POST")

	r.HandleFunc("/donors", donorHandler.DonorsPage).Methods("GET")
	r.HandleFunc("/donors", donorHandler.CreateDonor).Methods("POST")

	r.HandleFunc("/recipients", recipientHandler.RecipientsPage).Methods("GET")
	r.HandleFunc("/recipients", recipientHandler.CreateRecipient).Methods("POST")

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
