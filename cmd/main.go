package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"MediMaga/cache"
	"MediMaga/config"
	"MediMaga/controllers"
	"MediMaga/database"
	"MediMaga/monitoring"
	"MediMaga/repositories"
	"MediMaga/routes"
	"MediMaga/utils"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if cfg.SentryDSN != "" {
		if err := utils.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
			logger.Warn("Sentry disabled", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	monitoring.Init()

	ctx := context.Background()
	deps, cleanup, err := buildDependencies(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer cleanup()

	handler := routes.SetupRoutes(cfg, deps)

	srv := &http.Server{
		Addr:           ":" + cfg.AppPort,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listenAndServe()", zap.Error(err))
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	logger.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	wg.Wait()
	logger.Info("Server exited gracefully")
}

// buildDependencies opens the configured record store, the optional redis cache, the
// mailer and the event publisher. cleanup releases whatever was opened.
func buildDependencies(ctx context.Context, cfg *config.AppConfig) (routes.Dependencies, func(), error) {
	logger := utils.GetLogger()
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	deps := routes.Dependencies{HealthChecks: map[string]controllers.HealthCheck{}}

	var listCache *cache.Cache
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, database.RedisConfig{
			URL:          cfg.RedisURL,
			PoolSize:     cfg.RedisPoolSize,
			DialTimeout:  cfg.RedisDialTimeout,
			MinIdleConns: cfg.RedisMinIdleConns,
			ReadTimeout:  cfg.RedisReadTimeout,
			MaxRetries:   cfg.RedisMaxRetries,
		})
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = client.Close() })
		listCache = cache.NewCache(client)
		deps.HealthChecks["redis"] = func(ctx context.Context) error {
			stats := database.RedisPoolStats(client)
			logger.Debug("Redis pool stats", zap.Any("stats", stats))
			return listCache.Ping(ctx)
		}
	}

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.InitDB(ctx, cfg.DBURL, !cfg.IsProduction())
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = database.CloseDB(db) })
		deps.Appointments = repositories.NewAppointmentRepository(db, listCache)
		deps.Contacts = repositories.NewContactRepository(db, listCache)
		deps.HealthChecks["database"] = func(ctx context.Context) error { return database.PingDB(ctx, db) }
	case config.DriverMongo:
		db, err := database.InitMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return deps, cleanup, err
		}
		closers = append(closers, func() { _ = db.Client().Disconnect(context.Background()) })
		deps.Appointments = repositories.NewMongoAppointmentRepository(db)
		deps.Contacts = repositories.NewMongoContactRepository(db)
		deps.HealthChecks["database"] = func(ctx context.Context) error { return database.PingMongo(ctx, db) }
	case config.DriverMemory:
		logger.Warn("Using the in-memory store, records are lost on restart")
		deps.Appointments = repositories.NewMemoryAppointmentRepository()
		deps.Contacts = repositories.NewMemoryContactRepository()
	}

	deps.Notifier = utils.NewBookingMailer(utils.MailConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.MailFrom,
	})

	if cfg.KafkaBroker != "" {
		publisher := utils.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		closers = append(closers, func() { _ = publisher.Close() })
		deps.Events = publisher
	}

	return deps, cleanup, nil
}
