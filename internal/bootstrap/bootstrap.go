package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rodrigoclira/hr-dashboard/docs" // Import generated swagger docs
	appControllers "github.com/rodrigoclira/hr-dashboard/internal/app/controllers"
	appRoutes "github.com/rodrigoclira/hr-dashboard/internal/app/routes"
	appServices "github.com/rodrigoclira/hr-dashboard/internal/app/services"
	"github.com/rodrigoclira/hr-dashboard/internal/config"
	"github.com/rodrigoclira/hr-dashboard/internal/dataset"
	appMiddleware "github.com/rodrigoclira/hr-dashboard/internal/middleware"
	"github.com/rodrigoclira/hr-dashboard/internal/pkg/logger"
	"github.com/rodrigoclira/hr-dashboard/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Table               *dataset.Table
	AnalyticsService    *appServices.AnalyticsService
	PeopleService       *appServices.PeopleService
	DashboardController *appControllers.DashboardController
	ChartsController    *appControllers.ChartsController
	PeopleController    *appControllers.PeopleController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// LoadDataset reads the employee table into memory. A load failure is fatal:
// the server never starts over missing or malformed data.
func LoadDataset(cfg *config.Config, lgr zerolog.Logger) (*dataset.Table, error) {
	lgr.Info().Str("path", cfg.Dataset.Path).Str("format", cfg.Dataset.Format).Msg("Loading dataset...")

	table, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.Format, time.Now())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load dataset")
		return nil, err
	}

	lgr.Info().Int("employees", table.Len()).Int("departments", len(table.Departments())).Msg("Dataset loaded")
	return table, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(table *dataset.Table, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Table: table, Logger: lgr}

	deps.AnalyticsService = appServices.NewAnalyticsService(table)
	deps.PeopleService = appServices.NewPeopleService(table, time.Now)

	deps.DashboardController = appControllers.NewDashboardController(deps.AnalyticsService, table)
	deps.ChartsController = appControllers.NewChartsController(deps.AnalyticsService)
	deps.PeopleController = appControllers.NewPeopleController(deps.PeopleService)

	return deps
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.Metrics())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Dashboard page
	router.GET("/", func(c *gin.Context) {
		page, err := web.IndexHTML()
		if err != nil {
			c.String(http.StatusInternalServerError, "dashboard page unavailable")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.DashboardController,
		deps.ChartsController,
		deps.PeopleController,
	)

	return router
}
