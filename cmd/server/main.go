package main

import (
	"log"
	"net/http"

	"github.com/Musabek03/Instagram-clone/internal/router"
	"github.com/Musabek03/Instagram-clone/pkg/config"
	"github.com/Musabek03/Instagram-clone/pkg/validators"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres)

	// Validator
	e.Validator = validators.NewValidator()

	// Metrics server on its own port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+cfg.MetricsPort, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
