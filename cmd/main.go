package main

import (
	"os"

	"contact_service/config"
	"contact_service/internal/delivery"
	"contact_service/internal/repository"
	"contact_service/internal/usecase"
	"contact_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	cfg := config.LoadConfig(logger)

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: info", cfg.LogLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	logger.Info("Starting Contact Service...")

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	logger.Info("Database connection established.")

	if err := db.RunMigrations(database); err != nil {
		logger.Fatalf("Failed to run database migrations: %v", err)
	}
	logger.Info("Database migrations applied.")

	// --- Dependency Injection ---
	userRepo := repository.NewPostgresUserRepository(database, logger)
	contactRepo := repository.NewPostgresContactRepository(database, logger)
	logger.Info("Repositories initialized.")

	authUseCase := usecase.NewAuthUseCase(userRepo, logger, []byte(cfg.JWTSecret), cfg.TokenTTL)
	contactUseCase := usecase.NewContactUseCase(contactRepo, logger)
	logger.Info("Use cases initialized.")

	authHandler := delivery.NewAuthHandler(authUseCase, logger)
	contactHandler := delivery.NewContactHandler(contactUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(delivery.RequestLogger(logger))

	authHandler.RegisterRoutes(router)

	protected := router.Group("")
	protected.Use(delivery.AuthMiddleware([]byte(cfg.JWTSecret), logger))
	contactHandler.RegisterRoutes(protected)
	logger.Info("Routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
