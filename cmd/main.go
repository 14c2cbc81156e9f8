package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"billboard-ops/internal/adapter/http"
	"billboard-ops/internal/adapter/kafka"
	"billboard-ops/internal/adapter/postgres"
	"billboard-ops/internal/adapter/redis"
	"billboard-ops/internal/adapter/usecase"
	"billboard-ops/internal/config"
	"billboard-ops/internal/config/configs"
	"billboard-ops/internal/core/port"
	"billboard-ops/internal/db"
	"billboard-ops/internal/tracing"
)

// main is the entry point of the billboard booking service. It loads
// configuration, runs migrations, wires repositories, the sequencer and the
// event publisher into the use cases, then serves HTTP until a termination
// signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := tracing.Init(cfg.Tracing)
	if err != nil {
		logger.Error("tracing init error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown error", slog.Any("error", err))
		}
	}()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("sample inventory seeded")
	}

	repos := usecase.Repositories{
		Tx:             postgres.NewTransactor(pool),
		Billboards:     postgres.NewBillboardRepository(pool),
		Customers:      postgres.NewCustomerRepository(pool),
		Bookings:       postgres.NewBookingRepository(pool),
		Campaigns:      postgres.NewCampaignRepository(pool),
		PurchaseOrders: postgres.NewPurchaseOrderRepository(pool),
	}

	var seq port.Sequencer
	switch cfg.Sequence.SequenceBackend() {
	case configs.SequenceRedis:
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		seq = redis.NewSequencer(rdb)
	default:
		seq = postgres.NewSequencer(pool)
	}
	logger.Info("sequence backend selected", slog.String("backend", cfg.Sequence.SequenceBackend()))

	// a nil *kafka.Publisher must not end up inside the interface
	var events port.EventPublisher
	if pub := kafka.NewPublisher(cfg.Kafka); pub != nil {
		events = pub
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Warn("kafka writer close error", slog.Any("error", err))
			}
		}()
		logger.Info("publishing booking events", slog.String("topic", cfg.Kafka.Topic))
	}

	availability := usecase.NewAvailabilityService(repos.Billboards, repos.Bookings)
	handler := httpadapter.NewHandler(httpadapter.Services{
		Availability: availability,
		Bookings:     usecase.NewBookingService(repos, availability, seq, events, logger),
		Campaigns:    usecase.NewCampaignService(repos, availability, seq, events, logger),
		Settlement:   usecase.NewSettlementService(repos, seq, events, logger),
		Inventory:    usecase.NewInventoryService(repos.Billboards, repos.Customers, logger),
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
