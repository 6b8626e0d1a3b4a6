package app

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/wyovotewatch/district-alerts-api/docs"
	"github.com/wyovotewatch/district-alerts-api/internal/cache"
	"github.com/wyovotewatch/district-alerts-api/internal/config"
	"github.com/wyovotewatch/district-alerts-api/internal/directory"
	"github.com/wyovotewatch/district-alerts-api/internal/emailer"
	handlerAdmin "github.com/wyovotewatch/district-alerts-api/internal/handlers/admin"
	handlerDistricts "github.com/wyovotewatch/district-alerts-api/internal/handlers/districts"
	"github.com/wyovotewatch/district-alerts-api/internal/handlers/subscription"
	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/notifier"
	"github.com/wyovotewatch/district-alerts-api/internal/repository/sqlite"
	"github.com/wyovotewatch/district-alerts-api/internal/services/districts"
	"github.com/wyovotewatch/district-alerts-api/internal/services/districts/decorators"
	"github.com/wyovotewatch/district-alerts-api/internal/services/email"
	serviceLogger "github.com/wyovotewatch/district-alerts-api/internal/services/logger"
	"github.com/wyovotewatch/district-alerts-api/internal/services/subscriptions"
	"github.com/wyovotewatch/district-alerts-api/internal/sms"
)

const (
	timeoutDuration = 5 * time.Second

	fileMode = 0o644
)

type districtResolver interface {
	Resolve(ctx context.Context, req models.LookupRequest) (models.ResolveResult, error)
}

type App struct {
	cfg config.Config
	log *log.Logger
}

type ServiceContainer struct {
	DistrictService     districtResolver
	SubscriptionService *subscriptions.Service
	EmailService        *email.Service
	Notificator         *notifier.Notifier
	LegislatorRepo      *sqlite.LegislatorRepository
	Metrics             *metrics.Metrics

	Router *gin.Engine
	Srv    *http.Server
	Db     *sql.DB
}

func New(cfg config.Config, logger *log.Logger) *App {
	return &App{
		cfg: cfg,
		log: logger,
	}
}

func (a *App) Init() ServiceContainer {
	a.log.Println("Initializing application")

	db, err := CreateSqliteDb(a.cfg.DB.Dialect, a.cfg.DB.Source)
	if err != nil {
		a.log.Panic(err)
	}

	if err := InitSqliteDb(db, a.cfg.DB.Dialect, a.cfg.DB.MigrationsPath); err != nil {
		a.log.Panic(err)
	}

	m := metrics.New(a.cfg.MetricsNamespace, db, a.cfg.DB.Source)

	router := gin.Default()
	router.Use(m.HTTPMiddleware())

	apiServer := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	fileLogger, err := newFileLogger(a.cfg.LogsPath)
	if err != nil {
		a.log.Panicf("failed to create file logger: %v", err)
	}
	defer func(fileLogger *zap.Logger) {
		if err := fileLogger.Sync(); err != nil {
			a.log.Printf("failed to sync file logger: %v", err)
		}
	}(fileLogger)

	httpLogClient := &http.Client{
		Transport: serviceLogger.NewRoundTripper(fileLogger),
	}

	subscriberRepo := sqlite.NewSubscriberRepository(db, a.log)
	legislatorRepo := sqlite.NewLegislatorRepository(db, a.log)
	voteRepo := sqlite.NewVoteRepository(db, a.log)
	dedupRepo := sqlite.NewDedupRepository(db, a.log)

	var resolver districtResolver = districts.NewService(a.log, directory.Default())
	if a.cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		lookupCache := cache.NewRedisClient[models.ResolveResult](
			redisClient,
			a.log,
			time.Duration(a.cfg.Redis.LookupTTL)*time.Second,
		)
		resolver = decorators.NewCachedResolver(resolver, lookupCache, a.log)
	}

	smtpService := emailer.NewSMTPService(&a.cfg, a.log)
	emailService := email.NewService(smtpService, a.cfg.TemplatesDir)

	smsClient := sms.NewGatewayClient(
		a.cfg.SMS.APIKey,
		a.cfg.SMS.URL,
		a.cfg.SMS.From,
		httpLogClient,
		a.log,
	)
	smsSender := sms.NewBreakerClient("sms-gateway", smsClient)

	subscriptionService := subscriptions.NewService(subscriberRepo, emailService, smsSender, a.log)

	notificator := notifier.New(
		voteRepo,
		subscriberRepo,
		dedupRepo,
		emailService,
		smsSender,
		notifier.Schedule{
			RealtimeSpec:     a.cfg.Dispatcher.RealtimeSpec,
			DailySpec:        a.cfg.Dispatcher.DailySpec,
			RealtimeLookback: time.Duration(a.cfg.Dispatcher.RealtimeLookbackMin) * time.Minute,
			DailyLookback:    time.Duration(a.cfg.Dispatcher.DailyLookbackMin) * time.Minute,
		},
		a.log,
		m,
	)

	return ServiceContainer{
		DistrictService:     resolver,
		SubscriptionService: subscriptionService,
		EmailService:        emailService,
		Notificator:         notificator,
		LegislatorRepo:      legislatorRepo,
		Metrics:             m,

		Router: router,
		Srv:    apiServer,
		Db:     db,
	}
}

func (a *App) Start(srvContainer ServiceContainer) error {
	a.log.Println("Starting server on", a.cfg.ServerAddress())

	defer func() {
		if err := srvContainer.Srv.Close(); err != nil {
			a.log.Println("Error stopping server:", err)
		}
	}()

	districtHandler := handlerDistricts.NewHandler(srvContainer.DistrictService, srvContainer.Metrics)
	subHandler := subscription.NewHandler(srvContainer.SubscriptionService, srvContainer.Metrics)
	adminHandler := handlerAdmin.NewHandler(srvContainer.LegislatorRepo, srvContainer.Metrics)

	api := srvContainer.Router.Group("/api")
	{
		api.POST("/districts/lookup", districtHandler.Lookup)
		api.POST("/subscribe", subHandler.Subscribe)
		api.POST("/admin/legislators/import", adminHandler.ImportLegislators)
		api.GET("/legislators", adminHandler.ListLegislators)
	}
	srvContainer.Router.GET("/metrics", gin.WrapH(srvContainer.Metrics.Handler()))
	srvContainer.Router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	if err := srvContainer.Notificator.Start(context.Background()); err != nil {
		return err
	}

	if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	defer func() {
		if err := a.Stop(srvContainer); err != nil {
			a.log.Panicf("failed to shutdown application: %v", err)
		}
	}()
	return nil
}

func (a *App) Stop(srvContainer ServiceContainer) error {
	a.log.Println("Stopping application…")

	srvContainer.Notificator.Stop()
	a.log.Println("Dispatcher stopped")

	ctx, cancel := context.WithTimeout(context.Background(), timeoutDuration)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.log.Println("HTTP shutdown error:", err)
	} else {
		a.log.Println("HTTP server stopped")
	}

	if err := srvContainer.Db.Close(); err != nil {
		a.log.Println("DB close error:", err)
	} else {
		a.log.Println("Database closed")
	}

	a.log.Println("Shutdown complete")
	return nil
}

func CreateSqliteDb(dialect, name string) (*sql.DB, error) {
	if name == "" {
		return nil, errors.New("database name cannot be empty")
	}
	connectionString := "file:" + name + "?cache=shared&mode=rwc"
	db, err := sql.Open(dialect, connectionString)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitSqliteDb(db *sql.DB, dialect, migrationPath string) error {
	log.Println("Initializing migrations:", migrationPath)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, migrationPath); err != nil {
		return err
	}

	return nil
}

func newFileLogger(filePath string) (*zap.Logger, error) {
	file, err := os.OpenFile(filepath.Clean(filePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, err
	}

	writer := zapcore.AddSync(file)

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		writer,
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
