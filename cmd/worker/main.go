package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront-affiliates/internal/bootstrap"
	"storefront-affiliates/internal/config"
	"storefront-affiliates/internal/events/consumers"
	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/jobs/scheduler"
	jobWorkers "storefront-affiliates/internal/jobs/workers"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/workers"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := observability.NewLoggerAtLevel(cfg.Server.LogLevel)
	if err != nil {
		log.Printf("logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info(ctx, "Starting background worker server...")

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	recorder := &deps.ReferralProcessor

	// Initialize asynq task workers
	referralWorker := jobWorkers.NewReferralWorker(recorder, logger)
	emailWorker := jobWorkers.NewEmailWorker(&deps.Store, deps.EmailService, cfg.Services.WebAppURI, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 20,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeReferralRecord, referralWorker.ProcessReferralTask)
	mux.HandleFunc(jobs.TypeEmailAffiliateWelcome, emailWorker.ProcessEmailTask)
	mux.HandleFunc(jobs.TypeEmailWithdrawalRequested, emailWorker.ProcessEmailTask)
	mux.HandleFunc(jobs.TypeEmailWithdrawalStatus, emailWorker.ProcessEmailTask)

	// PaymentConfirmed events from the payments topic
	consumerConfig := workers.DefaultConsumerConfig(cfg.Kafka.BrokerList(), cfg.Kafka.ConsumerGroup, cfg.Kafka.PaymentsTopic)
	consumerConfig.NumWorkers = cfg.WorkerPool.PaymentWorkers
	paymentConsumer := workers.NewConsumer(
		consumerConfig,
		consumers.NewPaymentEventProcessor(recorder, deps.JobClient, logger),
		logger,
	)

	// Periodic ledger reconciliation
	cronScheduler := scheduler.New(logger)
	reconcileJob := scheduler.NewLedgerReconcileJob(&deps.Store, cfg.Ledger.ReconcileSchedule, deps.Metrics, logger)
	if err := cronScheduler.Register(ctx, reconcileJob); err != nil {
		logger.Fatal(ctx, "failed to register ledger reconcile job", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr()))
		if err := srv.Run(mux); err != nil {
			logger.Fatal(ctx, "failed to run task server", err)
		}
	}()

	go func() {
		if err := paymentConsumer.Start(ctx); err != nil {
			logger.Error(ctx, "payment consumer stopped with error", err)
		}
	}()

	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		if err := cronScheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "scheduler stopped with error", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	cancel()
	paymentConsumer.Stop()
	srv.Shutdown()
	<-schedulerDone
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
