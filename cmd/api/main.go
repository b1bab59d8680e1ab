package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/bellitaspa/agenda-api/internal/config"
	addonHandler "github.com/bellitaspa/agenda-api/internal/handler/addon"
	appointmentHandler "github.com/bellitaspa/agenda-api/internal/handler/appointment"
	healthHandler "github.com/bellitaspa/agenda-api/internal/handler/health"
	lookupHandler "github.com/bellitaspa/agenda-api/internal/handler/lookup"
	patientHandler "github.com/bellitaspa/agenda-api/internal/handler/patient"
	serviceHandler "github.com/bellitaspa/agenda-api/internal/handler/service"
	statsHandler "github.com/bellitaspa/agenda-api/internal/handler/stats"
	workerHandler "github.com/bellitaspa/agenda-api/internal/handler/worker"
	"github.com/bellitaspa/agenda-api/internal/middleware"
	"github.com/bellitaspa/agenda-api/internal/repository/postgres"
	"github.com/bellitaspa/agenda-api/internal/router"
	appointmentService "github.com/bellitaspa/agenda-api/internal/service/appointment"
	"github.com/bellitaspa/agenda-api/internal/service/catalog"
	reminderService "github.com/bellitaspa/agenda-api/internal/service/reminder"
	statsService "github.com/bellitaspa/agenda-api/internal/service/stats"
	"github.com/bellitaspa/agenda-api/pkg/logger"
	"github.com/bellitaspa/agenda-api/pkg/messaging/redis"
	"github.com/bellitaspa/agenda-api/pkg/metrics"
	"github.com/bellitaspa/agenda-api/pkg/validator"
	"github.com/bellitaspa/agenda-api/pkg/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	base := postgres.NewBaseRepository(db)
	patientRepo := postgres.NewPatientRepository(base)
	workerRepo := postgres.NewWorkerRepository(base)
	serviceRepo := postgres.NewServiceRepository(base)
	treatmentRepo := postgres.NewTreatmentRepository(base)
	addonRepo := postgres.NewAddonRepository(base)
	recordRepo := postgres.NewRecordRepository(base)
	outboxRepo := postgres.NewOutboxRepository(base)
	appointmentRepo := postgres.NewAppointmentRepository(base, outboxRepo)

	appMetrics := metrics.NewMetrics("agenda", "api")

	catalogSvc := catalog.NewService(patientRepo, workerRepo, serviceRepo, treatmentRepo, addonRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, recordRepo, catalogSvc, appLogger, appMetrics)
	statsSvc := statsService.NewService(appointmentRepo, patientRepo)
	reminderSvc := reminderService.NewService(
		appointmentRepo,
		catalogSvc,
		reminderService.SMTPConfig{
			Host:     cfg.Reminder.SMTPHost,
			Port:     cfg.Reminder.SMTPPort,
			User:     cfg.Reminder.SMTPUser,
			Password: cfg.Reminder.SMTPPassword,
			From:     cfg.Reminder.From,
		},
		cfg.Reminder.Schedule,
		appLogger,
	)

	v := validator.New()

	r := router.NewRouter(
		router.Config{
			Mode:          cfg.Server.Mode,
			RateLimit:     rate.Limit(cfg.Server.RateLimit),
			RateBurst:     cfg.Server.RateBurst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "agenda_http",
		},
		healthHandler.NewHandler(db),
		patientHandler.NewHandler(catalogSvc, recordRepo, v),
		workerHandler.NewHandler(catalogSvc, v),
		serviceHandler.NewHandler(catalogSvc, v),
		addonHandler.NewHandler(catalogSvc, v),
		appointmentHandler.NewHandler(appointmentSvc, v),
		statsHandler.NewHandler(statsSvc),
		lookupHandler.NewHandler(),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	broker, err := redis.NewRedisBroker(redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	processorCtx, stopProcessor := context.WithCancel(context.Background())
	defer stopProcessor()

	outboxProcessor := worker.NewOutboxProcessor(outboxRepo, broker, worker.OutboxProcessorConfig{
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollInterval,
		RetryAttempts: cfg.Outbox.RetryAttempts,
		RetryDelay:    cfg.Outbox.RetryDelay,
		RetainFor:     cfg.Outbox.RetainFor,
	}, appLogger, appMetrics)
	go outboxProcessor.Start(processorCtx)

	if err := reminderSvc.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start reminder scheduler")
	}
	defer reminderSvc.Stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	appLogger.Info("server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
