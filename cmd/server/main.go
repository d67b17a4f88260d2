package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lido-club-backend/internal/api/routes"
	"lido-club-backend/internal/auth"
	"lido-club-backend/internal/config"
	"lido-club-backend/internal/database"
	"lido-club-backend/internal/logger"
	"lido-club-backend/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

//	@title			Lido Club Backend API
//	@version		1.0
//	@description	Backend API for the club app: teams, players, match scheduling, availability, notifications and team chat.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	dbOpts := &database.Options{}
	if cfg.IsDevelopment() {
		dbOpts.LogLevel = gormlogger.Warn
	}
	db, err := database.Initialize(cfg.DatabaseURL, dbOpts)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	broker, err := newBroker(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize realtime broker: ", err)
	}
	defer broker.Close()

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Leeway:    cfg.JWTLeeway,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize auth: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, broker, authService)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newBroker(cfg *config.Config) (realtime.Broker, error) {
	switch cfg.RealtimeBackend {
	case "redis":
		logrus.WithField("addr", cfg.RedisAddr).Info("Using redis realtime broker")
		return realtime.NewRedisBroker(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		logrus.Info("Using in-memory realtime broker")
		return realtime.NewMemoryBroker(), nil
	}
}
