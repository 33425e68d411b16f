package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/config"
	"github.com/microcuotas/app-solicitudes/internal/handlers"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/middleware"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/microcuotas/app-solicitudes/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	_ "github.com/microcuotas/app-solicitudes/docs"
)

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs

// @title           MicroCuotas API
// @version         1.0
// @description     Solicitudes de microcréditos: simulación, verificación de edad y CUIL, consulta a la Central de Deudores del BCRA y registro de la solicitud. Incluye el reporte de solicitudes para el back-office.

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name solicitudes
// @tag.description Pasos del formulario de solicitud

// @tag.name reportes
// @tag.description Reporte de solicitudes (back-office)

// @tag.name simulacion
// @tag.description Parámetros de simulación

// @tag.name health
// @tag.description Estado del servicio

func main() {
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	observability.InitTracer()
	defer observability.ShutdownTracer()

	store, paramsStore, checks := initStores()
	config.InitRedis()
	if config.Redis != nil {
		checks = append(checks, handlers.DependencyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return config.Redis.Ping(ctx).Err() },
		})
	}

	logger := logging.Logger
	cfg := config.AppConfig

	bureau := services.NewBureauClient(services.BureauClientConfig{
		BaseURL:      cfg.BCRABaseURL,
		Timeout:      cfg.BCRATimeout,
		CacheTTL:     cfg.BCRACacheTTL,
		RateLimit:    cfg.BCRARateLimit,
		RateInterval: cfg.BCRARateInterval,
		Retry:        services.DefaultRetryConfig(),
	}, config.Redis, logger)

	guard := services.NewSolicitudGuard(store, logger)
	params := services.NewSimulationParamsService(paramsStore, config.Redis, cfg.RedisTTL, logger)
	wizard := services.NewWizardService(guard, bureau, params, services.WizardConfig{
		RecencyWindowDays: cfg.RecencyWindowDays,
		TestCUIL:          cfg.TestCUIL,
		Location:          cfg.Location(),
	}, logger)
	report := services.NewReportService(store, cfg.Location(), logger)

	solicitudHandlers := handlers.NewSolicitudHandlers(logger, wizard)
	reportHandlers := handlers.NewReportHandlers(logger, report)
	simulationHandlers := handlers.NewSimulationHandlers(logger, params)
	healthHandlers := handlers.NewHealthHandlers(logger, checks...)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthHandlers.HealthCheck)
		v1.GET("/simulacion/parametros", simulationHandlers.GetParams)

		solicitudes := v1.Group("/solicitudes")
		{
			solicitudes.POST("", solicitudHandlers.EnviarSolicitud)
			solicitudes.POST("/simulacion", solicitudHandlers.Simular)
			solicitudes.POST("/edad", solicitudHandlers.EvaluarEdad)
			solicitudes.POST("/cuil", solicitudHandlers.VerificarCuil)
			solicitudes.POST("/identidad", solicitudHandlers.VerificarIdentidad)
			solicitudes.POST("/identidad/rechazo", solicitudHandlers.RechazarIdentidad)
		}

		reportes := v1.Group("/reportes")
		reportes.Use(middleware.AuthMiddleware(), middleware.RequireReportAccess(), middleware.AuditMiddleware())
		{
			reportes.GET("/solicitudes", reportHandlers.List)
			reportes.GET("/solicitudes/export", reportHandlers.Export)
			reportes.DELETE("/solicitudes/:id", reportHandlers.Delete)
		}

		admin := v1.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin(), middleware.AuditMiddleware())
		{
			admin.PUT("/simulacion/parametros", simulationHandlers.UpdateParams)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("store", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if config.Redis != nil {
		_ = config.Redis.Close()
	}
	if config.MongoDB != nil {
		_ = config.MongoDB.Client().Disconnect(ctx)
	}

	logger.Info("server exited gracefully")
}

// initStores picks the application store backend. The memory backend keeps
// everything in process and is meant for local runs.
func initStores() (services.SolicitudStore, services.SimulationParamsStore, []handlers.DependencyCheck) {
	cfg := config.AppConfig
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		logging.Logger.Warn("using in-memory store, applications are lost on restart")
		return services.NewMemorySolicitudStore(), services.NewMemorySimulationParamsStore(), nil
	default:
		config.InitMongoDB()
		check := handlers.DependencyCheck{
			Name:     "mongodb",
			Critical: true,
			Ping: func(ctx context.Context) error {
				return config.MongoDB.Client().Ping(ctx, readpref.Primary())
			},
		}
		return services.NewMongoSolicitudStore(config.MongoDB, cfg.SolicitudesCollection),
			services.NewMongoSimulationParamsStore(config.MongoDB, cfg.ConfigCollection),
			[]handlers.DependencyCheck{check}
	}
}
