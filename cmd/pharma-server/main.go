package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sarahbeaino/pharmapos/internal/auth"
	"github.com/sarahbeaino/pharmapos/internal/config"
	"github.com/sarahbeaino/pharmapos/internal/event"
	"github.com/sarahbeaino/pharmapos/internal/http"
	"github.com/sarahbeaino/pharmapos/internal/log"
	"github.com/sarahbeaino/pharmapos/internal/relay"
	"github.com/sarahbeaino/pharmapos/internal/repository"
	"github.com/sarahbeaino/pharmapos/internal/service"
	"github.com/sarahbeaino/pharmapos/internal/storage/db"
	"github.com/sarahbeaino/pharmapos/internal/storage/mq"
	"github.com/sarahbeaino/pharmapos/internal/store"
	"github.com/sarahbeaino/pharmapos/internal/telemetry"
	"github.com/sarahbeaino/pharmapos/pkg/cmdutil"
	"github.com/sarahbeaino/pharmapos/pkg/validator"
)

type Config struct {
	Log      config.Log
	HTTP     config.HTTP
	App      config.App
	Store    config.Store
	Auth     config.Auth
	Postgres config.Postgres
	Redis    config.Redis
	Kafka    config.Kafka
	Relay    config.Relay
	Otel     config.Otel
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	var kafkaProducer *mq.KafkaProducer
	var kafkaConsumer *mq.KafkaConsumer
	if cfg.Kafka.Enabled() {
		kafkaProducer, err = mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		kafkaConsumer, err = mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}
		defer kafkaConsumer.Close()
	}

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	var snapshotStore store.Store
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
		if err != nil {
			return fmt.Errorf("error creating pgx pool: %w", err)
		}
		defer pgxPool.Close()

		dbClient := db.NewClient(pgxPool)
		snapshotRepo := repository.NewSnapshotRepository(dbClient)
		outboxMsgRepo := repository.NewOutboxMsgRepository(dbClient)
		snapshotStore = store.NewPostgresStore(cfg.App.SnapshotKey, dbClient, snapshotRepo, outboxMsgRepo)

		if kafkaProducer == nil {
			return fmt.Errorf("the POSTGRES store driver requires a kafka broker for the outbox relay")
		}

		wg.Go(func() {
			svc := relay.NewService(cfg.Relay, logger, dbClient, outboxMsgRepo, kafkaProducer)
			cleanup := svc.Run(ctx)
			logger.InfoContext(ctx, "relay service started")

			<-interruptChan

			logger.InfoContext(ctx, "relay service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "relay service is stopped")
		})

	case config.StoreDriverRedis:
		redisClient, err := store.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("error creating redis client: %w", err)
		}
		defer func() {
			//nolint:errcheck
			redisClient.Close()
		}()

		if kafkaProducer == nil {
			return fmt.Errorf("the REDIS store driver requires a kafka broker for event publishing")
		}
		snapshotStore = store.NewRedisStore(cfg.App.SnapshotKey, redisClient, kafkaProducer)

	case config.StoreDriverMemory:
		snapshotStore = store.NewMemoryStore()

	default:
		return fmt.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	pharmacy, err := service.New(ctx, logger, snapshotStore, v, cfg.App.Seed)
	if err != nil {
		return fmt.Errorf("error creating pharmacy service: %w", err)
	}

	authSvc := auth.NewService(cfg.Auth)

	if kafkaConsumer != nil {
		wg.Go(func() {
			svc := event.New(logger, kafkaConsumer)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started")

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, prometheus.DefaultRegisterer, pharmacy, authSvc)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
