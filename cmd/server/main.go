package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ShouwangH/garage-demo/internal/config"
	"github.com/ShouwangH/garage-demo/internal/database"
	"github.com/ShouwangH/garage-demo/internal/handlers"
	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/middleware"
	"github.com/ShouwangH/garage-demo/internal/repository"
	"github.com/ShouwangH/garage-demo/internal/services"
	"github.com/ShouwangH/garage-demo/internal/storage"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Garage API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
		"storage":     cfg.Storage.Driver,
	})

	ctx := context.Background()

	// Select the storage backend
	var store storage.Store
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database", err, map[string]interface{}{
				"host": cfg.Database.Host,
				"port": cfg.Database.Port,
				"name": cfg.Database.Name,
			})
		}
		defer db.Close()

		log.Info("Database connection established", map[string]interface{}{
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"database": cfg.Database.Name,
			"pool_min": cfg.Database.PoolMin,
			"pool_max": cfg.Database.PoolMax,
		})

		store = storage.NewPostgres(db, log)
	default:
		log.Info("Using in-memory storage", nil)
		store = storage.NewMemory()
	}

	// Seed demo data on first run
	boot := repository.NewBootstrapper(store, log)
	if err := boot.Initialize(ctx); err != nil {
		log.Fatal("Failed to initialize demo data", err, nil)
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(store, cfg.Server.Env, cfg.Storage.Driver)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	listingRepo := repository.NewListingRepository(store, log)
	searchRepo := repository.NewSavedSearchRepository(store, log)

	listingService := services.NewListingService(listingRepo, boot, log)
	searchService := services.NewSavedSearchService(searchRepo, listingRepo, log)
	notificationService := services.NewNotificationService(listingRepo, log)

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(listingService, searchService)
	searchHandler := handlers.NewSavedSearchHandler(searchService, notificationService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		listings := v1.Group("/listings")
		{
			listings.GET("", listingHandler.List)
			listings.POST("", listingHandler.Create)
			listings.DELETE("/:id", listingHandler.Delete)
			listings.POST("/simulate", listingHandler.Simulate)
		}

		searches := v1.Group("/saved-searches")
		{
			searches.GET("", searchHandler.List)
			searches.POST("", searchHandler.Create)
			searches.PUT("/:id", searchHandler.Update)
			searches.DELETE("/:id", searchHandler.Delete)
			searches.POST("/:id/toggle", searchHandler.ToggleStatus)
			searches.GET("/:id/email-preview", searchHandler.EmailPreview)
		}

		v1.POST("/demo/reset", listingHandler.Reset)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
