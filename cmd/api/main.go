package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prepitus/college-chances-api/api/swagger"
	"github.com/prepitus/college-chances-api/internal/handler"
	"github.com/prepitus/college-chances-api/internal/middleware"
	"github.com/prepitus/college-chances-api/internal/models"
	"github.com/prepitus/college-chances-api/internal/repository"
	"github.com/prepitus/college-chances-api/internal/service"
	"github.com/prepitus/college-chances-api/pkg/cache"
	"github.com/prepitus/college-chances-api/pkg/config"
	"github.com/prepitus/college-chances-api/pkg/database"
	"github.com/prepitus/college-chances-api/pkg/logger"
	"github.com/prepitus/college-chances-api/pkg/mail"
	corsmiddleware "github.com/prepitus/college-chances-api/pkg/middleware/cors"
	reqidmiddleware "github.com/prepitus/college-chances-api/pkg/middleware/requestid"
	"github.com/prepitus/college-chances-api/pkg/response"
)

// @title Prepitus College Chances API
// @version 2.0
// @description Lead-generation backend for the college chances calculator
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := newLeadStore(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init lead store", "driver", cfg.Store.Driver, "error", err)
	}

	var redisClient *redis.Client
	if cfg.Catalog.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("catalog cache unavailable, continuing without", "error", err)
			redisClient = nil
		}
	}
	catalog := repository.NewCatalogRepository(redisClient, cfg.Catalog.CacheTTL)

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	mailer := mail.NewSMTPMailer(cfg.SMTP, cfg.Sender)
	composer := service.NewEmailComposer()
	validate := validator.New()
	reports := service.NewReportService(store, catalog, composer, mailer, metrics, validate, logr, cfg.Report.PDFPath)

	exposeDetail := !cfg.IsProduction()
	healthHandler := handler.NewHealthHandler()
	reportHandler := handler.NewReportHandler(reports, exposeDetail)
	catalogHandler := handler.NewCatalogHandler(catalog)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logr.Error("unhandled panic", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Envelope{
			Success: false,
			Message: "Internal server error",
		})
	}))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}

	api := r.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.GET("/colleges", catalogHandler.List)
	api.POST("/store-user-and-send-report", reportHandler.StoreAndSend)
	api.POST("/send-college-report", reportHandler.SendReport)

	if cfg.Export.Enabled {
		exportHandler := handler.NewExportHandler(service.NewExportService(store), exposeDetail)
		api.GET("/leads/export", exportHandler.Leads)
	}

	if metrics != nil {
		r.GET("/metrics", handler.NewMetricsHandler(metrics).Prometheus)
	}

	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{Success: false, Message: "Endpoint not found"})
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting",
		"addr", addr,
		"env", cfg.Env,
		"version", config.Version,
		"store_driver", cfg.Store.Driver,
		"smtp_user", cfg.SMTP.Username,
		"report_pdf", cfg.Report.PDFPath,
	)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// leadStore is the persistence surface both drivers satisfy.
type leadStore interface {
	Upsert(ctx context.Context, lead models.Lead) (models.Lead, bool, error)
	List(ctx context.Context) ([]models.Lead, error)
}

// newLeadStore selects the persistence driver. The file store is the
// default; Postgres provides the keyed upsert alternative.
func newLeadStore(cfg *config.Config, logr *zap.Logger) (leadStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return repository.NewLeadPostgresRepository(db), nil
	default:
		return repository.NewLeadFileRepository(cfg.Store.UsersFile, logr)
	}
}
