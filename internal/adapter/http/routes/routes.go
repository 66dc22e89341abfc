package routes

import (
	"context"
	"fmt"
	"os"

	_ "cpq_quote/docs" // generated by swag init
	"cpq_quote/internal/adapter/http/handlers"
	"cpq_quote/internal/adapter/persistence/store"
	"cpq_quote/internal/infrastructure/database"
	"cpq_quote/internal/infrastructure/events"
	"cpq_quote/internal/infrastructure/quoteapi"
	"cpq_quote/internal/usecase"
	"cpq_quote/internal/usecase/interfaces"
	"cpq_quote/pkg/config"
	"cpq_quote/pkg/logger"
	"cpq_quote/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "cpq-quote"

// Run will start the server
func Run() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := newRouter(ctx, cfg, log, reg)
	if err != nil {
		log.Error(ctx, "[routes] failed to build dependencies", err)
		os.Exit(1)
	}

	log.Info(log.WithFields(ctx, map[string]any{
		"port":        cfg.App.Port,
		"persistence": cfg.Persistence.Backend,
		"mock_api":    cfg.QuoteAPI.Mock,
	}), "[routes] starting http server")

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Error(ctx, "Failed to startup the application", err)
		os.Exit(1)
	}
}

func newRouter(ctx context.Context, cfg *config.Config, log *logger.Logger, reg *prometheus.Registry) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	if err := getRoutes(ctx, router, cfg, log, reg); err != nil {
		return nil, err
	}
	return router, nil
}

func getRoutes(ctx context.Context, router *gin.Engine, cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) error {
	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return err
	}

	quoteMetrics := metrics.NewQuoteMetrics(reg)
	stores := store.NewSafeStore(backend, log)
	client := quoteapi.NewClient(cfg.QuoteAPI, quoteMetrics, log)
	sink := events.MultiSink{events.NewLogSink(log), events.NewMetricsSink(quoteMetrics)}

	sessionUseCase := usecase.NewQuoteSessionUseCase(stores, client, sink, log, cfg.QuoteAPI.Timeout,
		usecase.WithIdleTTL(cfg.Sessions.IdleTTL),
		usecase.WithMaxSessions(cfg.Sessions.MaxLive),
	)
	tariffUseCase := usecase.NewTariffUseCase()

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	tariffHandler := handlers.NewTariffHandler(tariffUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTariffRoutes(v1, tariffHandler)
	addSessionRoutes(v1, sessionHandler)
	return nil
}

func newBackend(ctx context.Context, cfg *config.Config) (interfaces.IKeyValueBackend, error) {
	switch cfg.Persistence.Backend {
	case config.PersistenceDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return store.NewDynamoBackend(ddb, cfg.DynamoDB.Table), nil
	case config.PersistenceRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisBackend(rdb, cfg.Redis.TTL), nil
	default:
		return store.NewMemoryBackend(), nil
	}
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error(c.Request.Context(), fmt.Sprintf("Recovered from panic: %v", recovered), nil)
		c.AbortWithStatus(500)
	}))
}
