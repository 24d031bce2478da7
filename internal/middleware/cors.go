package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"ewaste-tracker/internal/config"
)

// NewCORS builds the CORS handler. The app serves browser forms, so only
// the methods and headers the router actually accepts are allowed.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}).Handler
}
