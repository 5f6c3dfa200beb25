package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaccination-management/config"
	deliveryHttp "vaccination-management/internal/delivery/http"
	"vaccination-management/internal/delivery/http/handler"
	"vaccination-management/internal/delivery/http/middleware"
	"vaccination-management/internal/infrastructure/cache"
	"vaccination-management/internal/infrastructure/database"
	"vaccination-management/internal/metrics"
	"vaccination-management/internal/repository"
	"vaccination-management/internal/service"
	"vaccination-management/internal/usecase"
	"vaccination-management/pkg/jwt"
	"vaccination-management/pkg/password"
	"vaccination-management/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const startupTimeout = 30 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Metrics     *metrics.Metrics
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	log := newLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setLogLevel(log, cfg.App.LogLevel)
	log.WithField("env", cfg.App.Env).Info("Configuration loaded successfully")

	app := &App{Config: cfg, Log: log, Metrics: metrics.New()}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := app.connect(ctx); err != nil {
		app.Close()
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(cfg.DB, log); err != nil {
			app.Close()
			return nil, err
		}
	}

	server, err := app.initializeServer(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// connect opens the database and Redis concurrently.
func (app *App) connect(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		db, err := database.NewPostgresConnection(app.Config.DB, app.Log)
		if err != nil {
			return err
		}
		app.DB = db
		return nil
	})

	g.Go(func() error {
		client, err := cache.NewRedisClient(gctx, app.Config.Redis, app.Log)
		if err != nil {
			return err
		}
		app.RedisClient = client
		return nil
	})

	return g.Wait()
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

func setLogLevel(log *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, keeping %s", level, log.GetLevel())
		return
	}
	log.SetLevel(parsed)
}

// initializeServer wires every layer, runs the startup data tasks and returns the HTTP server.
func (app *App) initializeServer(ctx context.Context) (*http.Server, error) {
	cfg, db, log := app.Config, app.DB, app.Log

	jwtService := jwt.NewJWTService(cfg.JWT)
	hasher := password.NewHasher(cfg.App.BcryptCost)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	vaccineRepo := repository.NewVaccineRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	vaccinationRepo := repository.NewVaccinationRepository()
	articleRepo := repository.NewArticleRepository()

	// Initialize services
	guard := service.NewGuard(db, log, userRepo, jwtService)
	limiter := service.NewLoginLimiter(app.RedisClient, log, cfg.Login)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, hasher, jwtService, limiter, app.Metrics)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, appointmentRepo, vaccinationRepo, articleRepo)
	vaccineUsecase := usecase.NewVaccineUsecase(db, log, vaccineRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, vaccineRepo, vaccinationRepo, app.Metrics)
	vaccinationUsecase := usecase.NewVaccinationUsecase(db, log, vaccinationRepo, appointmentRepo, vaccineRepo, userRepo, app.Metrics)
	articleUsecase := usecase.NewArticleUsecase(db, log, articleRepo)

	if cfg.App.SeedVaccines {
		if _, err := vaccineUsecase.SeedCatalog(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed vaccine catalog: %w", err)
		}
	}

	if err := authUsecase.EnsureAdmin(ctx, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to ensure admin account: %w", err)
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(authUsecase, userUsecase, customValidator)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	vaccineHandler := handler.NewVaccineHandler(vaccineUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	vaccinationHandler := handler.NewVaccinationHandler(vaccinationUsecase, customValidator)
	articleHandler := handler.NewArticleHandler(articleUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(guard)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggerMiddleware := middleware.NewLoggerMiddleware(log)

	router := deliveryHttp.NewRouter(
		userHandler,
		authHandler,
		vaccineHandler,
		appointmentHandler,
		vaccinationHandler,
		articleHandler,
		authMiddleware,
		corsMiddleware,
		loggerMiddleware,
		app.Metrics,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
