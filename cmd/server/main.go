package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"pdfmerge-backend/internal/config"
	"pdfmerge-backend/internal/email"
	"pdfmerge-backend/internal/handlers"
	"pdfmerge-backend/internal/logging"
	"pdfmerge-backend/internal/payments"
	"pdfmerge-backend/internal/supabase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(cfg.Environment)
	defer logger.Sync()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Payment gateway
	gateway := payments.NewStripeGateway(cfg.StripeSecretKey)

	// Artifact storage. Handlers answer 503 while this is unconfigured.
	var store handlers.ArtifactStore
	if cfg.StorageConfigured() {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.StorageBucket)
		if err != nil {
			logger.Fatal("failed to initialize storage client", zap.Error(err))
		}
		store = storageClient
	} else {
		logger.Warn("storage not configured, finalize and download endpoints will answer 503")
	}

	// Email sender and its background dispatcher
	sender, err := email.NewSESSender(cfg.AWSRegion, cfg.EmailFrom, cfg.UseMockEmail, logger)
	if err != nil {
		logger.Fatal("failed to initialize email sender", zap.Error(err))
	}
	dispatcher := email.NewDispatcher(sender, logger)
	defer dispatcher.Close()

	// Handlers
	checkoutHandler := handlers.NewCheckoutHandler(cfg, gateway, logger)
	finalizeHandler := handlers.NewFinalizeHandler(cfg, gateway, store, dispatcher, logger)
	downloadHandler := handlers.NewDownloadHandler(store, logger)
	webhookHandler := handlers.NewWebhookHandler(cfg, logger)
	sessionHandler := handlers.NewSessionHandler(cfg, gateway, logger)
	precheckHandler := handlers.NewPrecheckHandler()

	// Setup router
	router := gin.Default()

	// Health check
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.POST("/precheck", precheckHandler.Precheck)
	api.GET("/pricing", sessionHandler.GetPricing)
	api.POST("/checkout", checkoutHandler.CreateIntent)
	api.GET("/checkout/status", sessionHandler.GetCheckoutStatus)
	api.POST("/merged", finalizeHandler.Finalize)

	// Download links are minted as {origin}/download/{id}
	router.GET("/download/:id", downloadHandler.Download)

	// Webhook (no auth, verified by signature)
	router.POST("/api/v1/webhooks/stripe", webhookHandler.HandleWebhook)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
