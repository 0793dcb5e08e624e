package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/pranaynookala001/PurdueGo2025/internal/app/controllers"
	appMigrations "github.com/pranaynookala001/PurdueGo2025/internal/app/migrations"
	appRepos "github.com/pranaynookala001/PurdueGo2025/internal/app/repositories"
	appRoutes "github.com/pranaynookala001/PurdueGo2025/internal/app/routes"
	appServices "github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/travel"
	"github.com/pranaynookala001/PurdueGo2025/internal/config"
	"github.com/pranaynookala001/PurdueGo2025/internal/db"
	appMiddleware "github.com/pranaynookala001/PurdueGo2025/internal/middleware"
	pkgAuth "github.com/pranaynookala001/PurdueGo2025/internal/pkg/auth"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/geocode"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/helpers"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ScheduleService    appServices.ScheduleService // Interface type
	ProfileService     appServices.ProfileService  // Interface type
	GeocodeService     appServices.GeocodeService  // Interface type
	TravelService      appServices.TravelService   // Interface type
	ExportService      appServices.ExportService   // Interface type
	ScheduleController *appControllers.ScheduleController
	ProfileController  *appControllers.ProfileController
	GeocodeController  *appControllers.GeocodeController
	TravelController   *appControllers.TravelController
	ExportController   *appControllers.ExportController
	AuthMiddleware     *appMiddleware.AuthMiddleware // Pointer to middleware struct
	Repos              *appRepos.Repositories        // Include the main repo container
	JWTService         *pkgAuth.JWTService
	Notifier           *travel.CronNotifier
	RedisClient        *redis.Client
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	placesClient := geocode.NewClient(
		cfg.Google.PlacesAPIKey,
		cfg.Google.Country,
		helpers.ParseDuration(cfg.Google.Timeout, 5*time.Second),
		deps.RedisClient,
	)

	estimator := &travel.WalkingEstimator{
		SpeedKmH: cfg.Travel.WalkingSpeedKmH,
		MinLead:  time.Duration(cfg.Travel.MinLeadMinutes) * time.Minute,
	}
	planner := travel.NewPlanner(estimator)

	deps.Notifier = travel.NewCronNotifier()
	deps.Notifier.Start()

	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository, planner)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.ScheduleRepository)
	deps.GeocodeService = appServices.NewGeocodeService(placesClient)
	deps.TravelService = appServices.NewTravelService(deps.Repos.ScheduleRepository, planner, deps.Notifier)
	deps.ExportService = appServices.NewExportService(deps.ScheduleService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.GeocodeController = appControllers.NewGeocodeController(deps.GeocodeService)
	deps.TravelController = appControllers.NewTravelController(deps.TravelService)
	deps.ExportController = appControllers.NewExportController(deps.ExportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.ScheduleController,
		deps.ProfileController,
		deps.GeocodeController,
		deps.TravelController,
		deps.ExportController,
		deps.AuthMiddleware, // Pass the middleware struct itself
	)

	return router
}
