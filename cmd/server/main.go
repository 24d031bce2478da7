package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ewaste-tracker/internal/config"
	"ewaste-tracker/internal/database"
	"ewaste-tracker/internal/handlers"
	h "ewaste-tracker/internal/http"
	"ewaste-tracker/internal/middleware"
	"ewaste-tracker/internal/repositories"
	"ewaste-tracker/internal/services"
	"ewaste-tracker/migrations"
)

func connectDatabase(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("[Postgres] Failed to connect: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Fatalf("[Postgres] Failed to ping: %v", err)
	}

	log.Println("[Postgres] Connected successfully")
	return pool
}

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := connectDatabase(cfg)
	defer pool.Close()

	// Run database migrations. Embedded so the binary is standalone.
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	templates, err := handlers.LoadTemplates()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Repositories
	assetRepo := repositories.NewAssetRepository(pool)
	assetLogRepo := repositories.NewAssetLogRepository(pool)
	donorRepo := repositories.NewDonorRepository(pool)
	recipientRepo := repositories.NewRecipientRepository(pool)

	// Services
	assetService := services.NewAssetService(assetRepo, assetLogRepo)
	donorService := services.NewDonorService(donorRepo)
	recipientService := services.NewRecipientService(recipientRepo)
	dashboardService := services.NewDashboardService(assetRepo)

	// Handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, templates)
	assetHandler := handlers.NewAssetHandler(assetService, donorService, recipientService, templates)
	donorHandler := handlers.NewDonorHandler(donorService, templates)
	recipientHandler := handlers.NewRecipientHandler(recipientService, templates)
	healthHandler := handlers.NewHealthHandler(pool)

	router := h.NewRouter(dashboardHandler, assetHandler, donorHandler, recipientHandler, healthHandler)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
