package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "onboarding-backend/internal/api/http"
	"onboarding-backend/internal/config"
	"onboarding-backend/internal/jobs"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/repository/postgres"
	"onboarding-backend/internal/scheduler"
	"onboarding-backend/internal/security"
	"onboarding-backend/internal/service"
	"onboarding-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Onboarding Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Logo Storage
	logoStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize logo storage", "error", err)
		log.Fatalf("Failed to initialize logo storage: %v", err)
	}
	logger.Info("Using local logo storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	intakeSvc := service.NewIntakeService(store.RegistrationRequestRepository)
	identity := service.NewIdentityMaterializer(store.AdminRepository, store.EmployeeRepository)
	factory := service.NewCompanyFactory(store.CompanyRepository, store.EmployeeRepository)
	reviewSvc := service.NewReviewService(store.RegistrationRequestRepository, identity, factory, emailSvc)

	// Initialize HTTP handlers
	handler := httpapi.NewHandler(intakeSvc, reviewSvc)
	logoHandler := httpapi.NewLogoUploadHandler(logoStorage, cfg.Storage.MaxFileSize)
	router := httpapi.NewRouter(handler, logoHandler, tokenManager)

	// Start the repair sweep scheduler
	jobRunner := jobs.NewJobRunner(reviewSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Start HTTP server
	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	if err := server.Close(); err != nil {
		logger.Error("Failed to close HTTP server", "error", err)
	}
}
