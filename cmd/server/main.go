package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitflow/fitness-app/internal/ai"
	"fitflow/fitness-app/internal/api"
	"fitflow/fitness-app/internal/config"
	"fitflow/fitness-app/internal/repository"
	"fitflow/fitness-app/internal/repository/memory"
	mongorepo "fitflow/fitness-app/internal/repository/mongo"
	"fitflow/fitness-app/internal/service"
	"fitflow/fitness-app/internal/storage"

	"github.com/gin-gonic/gin"
)

// @title FitFlow API
// @version 1.0
// @description Consumer fitness tracking backend: workouts, progress, goals, AI diet plans and coach chat.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting FitFlow server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Store ---
	var store repository.Store
	switch cfg.Database.Driver {
	case "memory", "":
		log.Println("Using in-memory store (volatile).")
		store = memory.NewStore()
	case "mongo":
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() { // Run index creation concurrently/in background
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureIndexes(ctx, appDB)
			log.Println("Index creation process completed.")
		}()

		seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
		store, err = mongorepo.NewStore(seedCtx, appDB)
		cancelSeed()
		if err != nil {
			log.Fatalf("FATAL: Could not initialize Mongo store: %v", err)
		}
	default:
		log.Fatalf("FATAL: Unknown database driver %q", cfg.Database.Driver)
	}

	// --- File Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- AI Client ---
	aiClient := &ai.Client{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		BaseURL:    cfg.OpenAI.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.OpenAI.Timeout},
	}

	// --- Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(store, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(store, fileStorage)
	workoutService := service.NewWorkoutService(store)
	dietService := service.NewDietService(store, aiClient)
	chatService := service.NewChatService(store, aiClient)
	trackingService := service.NewTrackingService(store)

	// --- Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router,
		authService, profileService, workoutService, dietService, chatService, trackingService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // must outlast the AI completion timeout

		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
