package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// Pinger is satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Health handles GET /health and reports database reachability.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	dbStatus := "healthy"
	code := http.StatusOK
	if err := h.DB.Ping(ctx); err != nil {
		log.Printf("[Health] database ping: %v", err)
		status = "degraded"
		dbStatus = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status":   status,
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
