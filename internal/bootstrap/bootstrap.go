package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/campushub/internal/app/controllers"
	appMigrations "github.com/yigit/campushub/internal/app/migrations"
	appRepos "github.com/yigit/campushub/internal/app/repositories"
	appRoutes "github.com/yigit/campushub/internal/app/routes"
	appServices "github.com/yigit/campushub/internal/app/services"
	"github.com/yigit/campushub/internal/config"
	"github.com/yigit/campushub/internal/db"
	appMiddleware "github.com/yigit/campushub/internal/middleware"
	"github.com/yigit/campushub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService       *appServices.UserService
	CourseService     *appServices.CourseService
	ProjectService    *appServices.ProjectService
	HealthController  *appControllers.HealthController
	UserController    *appControllers.UserController
	CourseController  *appControllers.CourseController
	ProjectController *appControllers.ProjectController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// envFiles maps APP_ENV profiles to their dotenv files.
var envFiles = map[string]string{
	"dev":    ".env.dev",
	"docker": ".env.docker",
	"test":   ".env.test",
}

// LoadConfigAndSetupLogger loads the environment profile and configuration,
// then initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// APP_ENV selects the dotenv file (default dev); a missing file is fine
	appEnv := config.GetEnv("APP_ENV", "dev")
	envFile, ok := envFiles[appEnv]
	if !ok {
		envFile = envFiles["dev"]
	}
	if err := godotenv.Load(envFile); err == nil {
		log.Info().Str("file", envFile).Msg("Environment file loaded")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and applies migrations.
// Connection failures are retried inside db.NewPostgresDB; exhausting the
// retries aborts startup.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.Run(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ProjectService = appServices.NewProjectService(deps.Repos.ProjectRepository)

	deps.HealthController = appControllers.NewHealthController()
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)

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

	// Development posture: any origin, any method, any header
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
	}))

	router.Use(appMiddleware.RequestID())

	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.UserController,
		deps.CourseController,
		deps.ProjectController,
	)

	return router
}
