package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"box-scheduler-backend/config"
	deliveryHttp "box-scheduler-backend/internal/delivery/http"
	"box-scheduler-backend/internal/delivery/http/handler"
	"box-scheduler-backend/internal/delivery/http/middleware"
	"box-scheduler-backend/internal/infrastructure/cache"
	"box-scheduler-backend/internal/infrastructure/database"
	"box-scheduler-backend/internal/ingest"
	"box-scheduler-backend/internal/repository"
	"box-scheduler-backend/internal/service"
	"box-scheduler-backend/internal/usecase"
	"box-scheduler-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
		return nil, err
	}

	// Initialize Redis. The directory cache degrades gracefully, so a
	// missing Redis only costs cache hits.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Redis unavailable, directory caching disabled: %v", err)
		redisClient = nil
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Load the doctor schedule CSV. A broken or missing file leaves
	// the directory empty instead of taking the service down.
	parser := ingest.NewParser(log)
	doctors, err := parser.Load(cfg.Schedule.CSVPath)
	if err != nil {
		log.Warnf("Failed to load schedule file %s, serving empty directory: %v", cfg.Schedule.CSVPath, err)
	} else {
		log.Infof("Loaded %d doctors from %s", len(doctors), cfg.Schedule.CSVPath)
	}

	// Initialize repositories
	directory := repository.NewDoctorDirectory(doctors)
	roomRepo := repository.NewRoomRepository()
	assignmentRepo := repository.NewAssignmentRepository()
	personaRepo := repository.NewPersonaRepository()

	// Initialize domain services
	engine := service.NewAvailabilityEngine(cfg.Schedule.SlotMinutes)
	floorMapper := service.NewFloorMapper(service.LoadFloorMapping(cfg.Schedule.FloorMapPath, log))
	directoryCache := service.NewDirectoryCache(redisClient, log, cfg.Redis.CacheTTL)

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, directory, directoryCache)
	roomUsecase := usecase.NewRoomUsecase(db, log, roomRepo, cfg.Schedule.Floors, floorMapper)
	assignmentUsecase := usecase.NewAssignmentUsecase(db, log, assignmentRepo, roomRepo, directory, engine)
	personaUsecase := usecase.NewPersonaUsecase(db, log, personaRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)
	assignmentHandler := handler.NewAssignmentHandler(assignmentUsecase, customValidator)
	personaHandler := handler.NewPersonaHandler(personaUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, roomHandler, assignmentHandler, personaHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
