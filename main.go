package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"profile-service/config"
	"profile-service/handlers"
	"profile-service/routes"
	"profile-service/store"
	"profile-service/telemetry"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	loadEnv        = godotenv.Load
	loadConfig     = config.Load
	initTelemetry  = telemetry.Init
	setupRoutes    = routes.SetupRoutes
	listenAndServe = http.ListenAndServe
	logFatal       = log.Fatal
)

func main() {
	if err := run(); err != nil {
		logFatal(err)
	}
}

func run() error {
	if err := loadEnv(); err != nil {
		log.Println("No .env file found; using system environment variables")
	}
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	log.Println("Environment:", appEnv)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx := context.Background()
	shutdownTelemetry, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("telemetry error: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(ctx); err != nil {
			log.Printf("telemetry shutdown error: %v", err)
		}
	}()

	profileStore := store.NewMemoryStore(store.SeedProfiles())
	profileHandler := handlers.NewProfileHandler(cfg, profileStore)
	router := setupRoutes(profileHandler)

	tracedRouter := otelhttp.NewHandler(router, "profile-service",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	corsOpts := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "PUT", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With"}),
	}

	corsHandler := gorillaHandlers.CORS(corsOpts...)(tracedRouter)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting mock profile server on port %s in %s environment (CORS: %s)", port, cfg.AppEnv, strings.Join(cfg.CORS.AllowedOrigins, ","))
	return listenAndServe(":"+port, corsHandler)
}
