package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"motostream-api/config"
	"motostream-api/database"
	"motostream-api/jobs"
	"motostream-api/logger"
	"motostream-api/metrics"
	"motostream-api/middleware"
	"motostream-api/routes"
	"motostream-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		panic(err)
	}
	log := logger.Get()

	metrics.Init(cfg.MetricsPrefix)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Seed the staff login on first start
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Warn("Failed to seed admin user", zap.Error(err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(routes.SetupCORS())
	router.Use(logger.Middleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Daily sales summary email
	reportJob := jobs.NewSalesReportJob(db, services.NewEmailService(cfg), cfg.ReportInterval)
	reportJob.Start()
	defer reportJob.Stop()

	log.Info("Starting MotoStream API server", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
