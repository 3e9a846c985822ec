package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "pousada-backend/internal/api/http"
	"pousada-backend/internal/config"
	"pousada-backend/internal/jobs"
	"pousada-backend/internal/logger"
	"pousada-backend/internal/repository/postgres"
	"pousada-backend/internal/scheduler"
	"pousada-backend/internal/security"
	"pousada-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Pousada Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	addressService := service.NewAddressService(store.AddressRepository)
	unitService := service.NewUnitService(store.UnitRepository, store.StayRepository)
	guestService := service.NewGuestService(store.GuestRepository)
	stayService := service.NewStayService(
		store.StayRepository,
		store.UnitRepository,
		store.GuestRepository,
		emailService,
	)
	paymentService := service.NewPaymentService(store.PaymentRepository, store.StayRepository)
	maintenanceService := service.NewMaintenanceService(store.ItemRepository, store.MaintenanceLogRepository)
	employeeService := service.NewEmployeeService(store.EmployeeRepository)
	dashboardService := service.NewDashboardService(
		store.UnitRepository,
		store.GuestRepository,
		store.StayRepository,
		store.PaymentRepository,
		store.MaintenanceLogRepository,
		store.EmployeeRepository,
	)

	// Initialize HTTP API
	handlers := httpapi.Handlers{
		Address:     httpapi.NewAddressHandler(addressService),
		Unit:        httpapi.NewUnitHandler(unitService),
		Guest:       httpapi.NewGuestHandler(guestService),
		Stay:        httpapi.NewStayHandler(stayService),
		Payment:     httpapi.NewPaymentHandler(paymentService),
		Maintenance: httpapi.NewMaintenanceHandler(maintenanceService),
		Employee:    httpapi.NewEmployeeHandler(employeeService),
		Dashboard:   httpapi.NewDashboardHandler(dashboardService),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(store.PaymentRepository, emailService, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
