package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"komoralink.backend/internal/config"
	"komoralink.backend/internal/infrastructure/charts"
	"komoralink.backend/internal/infrastructure/jobs"
	"komoralink.backend/internal/infrastructure/marketplace"
	"komoralink.backend/internal/infrastructure/repositories"
	"komoralink.backend/internal/interfaces/http/handlers"
	"komoralink.backend/internal/interfaces/http/middleware"
	"komoralink.backend/internal/usecases"
	"komoralink.backend/pkg/jwt"
	"komoralink.backend/pkg/logger"
	"komoralink.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (journal endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize upstream marketplace client
	gateway := marketplace.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// Initialize repositories
	onboardingSessionRepo := repositories.NewOnboardingSessionRepository(sessionStore, cfg.Onboarding.SessionTTL)
	submissionRepo := repositories.NewSubmissionRepository(db)
	otpRepo := repositories.NewOTPRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(gateway, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	onboardingUsecase := usecases.NewOnboardingUsecase(onboardingSessionRepo, submissionRepo, otpRepo, gateway, cfg.Onboarding.OTPTTL)
	walletUsecase := usecases.NewWalletUsecase(gateway)
	catalogUsecase := usecases.NewCatalogUsecase(gateway)
	orderUsecase := usecases.NewOrderUsecase(gateway)
	analyticsUsecase := usecases.NewAnalyticsUsecase(gateway, walletUsecase, charts.NewRenderer())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUsecase)
	adminHandler := handlers.NewAdminHandler(submissionRepo)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService, sessionStore)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupJob := jobs.NewOTPCleanupJob(otpRepo)
	go cleanupJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		onboardingHandler: onboardingHandler,
		walletHandler:     walletHandler,
		catalogHandler:    catalogHandler,
		orderHandler:      orderHandler,
		analyticsHandler:  analyticsHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		cleanupJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 KomoraLink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
