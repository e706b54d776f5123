package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"enginerent-backend/internal/api"
	"enginerent-backend/internal/config"
	"enginerent-backend/internal/logger"
	"enginerent-backend/internal/repository/postgres"
	"enginerent-backend/internal/security"
	"enginerent-backend/internal/service"
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
	logger.Info("Starting EngineRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// One lock authority shared by every equipment-status writer
	locks := service.NewKeyLock()

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.EquipmentRepository,
		store.PaymentRepository,
		store.UserRepository,
		emailSvc,
		locks,
		cfg.Reservations.StrictAvailability,
	)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.ReservationRepository)
	maintenanceSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.EquipmentRepository, locks)
	adminSvc := service.NewAdminService(store.EquipmentRepository, store.ReservationRepository, store.PaymentRepository)

	// Set up router and serve
	handler := api.NewHandler(authSvc, equipmentSvc, reservationSvc, paymentSvc, maintenanceSvc, adminSvc)
	router := api.NewRouter(handler, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := router.Run(cfg.GetServerAddress()); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
