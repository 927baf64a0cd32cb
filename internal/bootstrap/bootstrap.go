package bootstrap

import (
	"context"
	"fmt"

	"storefront-affiliates/internal/config"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	affiliatesHandler "storefront-affiliates/internal/affiliates/handler"
	affiliatesProcessor "storefront-affiliates/internal/affiliates/processor"
	"storefront-affiliates/internal/apierrors"
	"storefront-affiliates/internal/auth/handler"
	"storefront-affiliates/internal/auth/processor"
	"storefront-affiliates/internal/balance"
	kafkaClient "storefront-affiliates/internal/clients/kafka"
	"storefront-affiliates/internal/clients/mail"
	redisClient "storefront-affiliates/internal/clients/redis"
	couponsHandler "storefront-affiliates/internal/coupons/handler"
	couponsProcessor "storefront-affiliates/internal/coupons/processor"
	"storefront-affiliates/internal/email"
	"storefront-affiliates/internal/events"
	"storefront-affiliates/internal/jobs"
	billingHandler "storefront-affiliates/internal/money/billing/handler"
	billingProcessor "storefront-affiliates/internal/money/billing/processor"
	"storefront-affiliates/internal/ratelimit"
	referralHandler "storefront-affiliates/internal/referral/handler"
	referralProcessor "storefront-affiliates/internal/referral/processor"
	withdrawalsHandler "storefront-affiliates/internal/withdrawals/handler"
	withdrawalsProcessor "storefront-affiliates/internal/withdrawals/processor"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Logger  *observability.Logger
	Metrics *observability.Metrics

	// Services shared by the API and the worker process
	EmailService      *email.EmailService
	JobClient         *jobs.Client
	Balances          *balance.Calculator
	ReferralProcessor referralProcessor.ReferralProcessor
	RateLimiter       *ratelimit.Service

	// Handlers
	AuthHandler        handler.Handler
	AffiliatesHandler  affiliatesHandler.Handler
	CouponsHandler     couponsHandler.Handler
	ReferralHandler    referralHandler.Handler
	WithdrawalsHandler withdrawalsHandler.Handler
	BillingHandler     billingHandler.Handler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}
	apierrors.SetLogger(logger)

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis backs the balance cache. When disabled the client is nil and
	// balance reads go straight to the ledger.
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	// Initialize email service
	deps.EmailService = email.New(mailClient, cfg.Services.DefaultEmailSender, logger)

	// Initialize Kafka producer for outbound affiliate events
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.BrokerList(),
		Topic:   cfg.Kafka.Topic,
	}, logger)
	publisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Initialize job client
	deps.JobClient = jobs.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)

	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)
	deps.Balances = balance.New(&deps.Store, deps.RedisClient, deps.Metrics, logger)

	// Initialize auth processor and handler
	authProc := processor.New(&deps.Store, cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	if cfg.Admin.Email != "" {
		if err := authProc.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return nil, fmt.Errorf("failed to seed admin user: %w", err)
		}
	}

	// Initialize affiliate processor and handler
	affiliateProc := affiliatesProcessor.New(
		&deps.Store,
		&authProc,
		deps.Balances,
		publisher,
		deps.JobClient,
		cfg.Ledger.DefaultPhoneRegion,
		logger,
	)
	deps.AffiliatesHandler = affiliatesHandler.New(affiliateProc, logger)

	// Initialize coupon processor and handler
	couponProc := couponsProcessor.New(&deps.Store, logger)
	deps.CouponsHandler = couponsHandler.New(couponProc, logger)

	// Initialize referral processor and handler
	deps.ReferralProcessor = referralProcessor.New(&deps.Store, publisher, deps.Balances, deps.Metrics, logger)
	deps.ReferralHandler = referralHandler.New(deps.ReferralProcessor, logger)

	// Initialize withdrawal processor and handler
	withdrawalProc := withdrawalsProcessor.New(&deps.Store, publisher, deps.JobClient, deps.Balances, deps.Metrics, logger)
	deps.WithdrawalsHandler = withdrawalsHandler.New(withdrawalProc, logger)

	// Initialize billing processor and handler
	billingProc := billingProcessor.New(
		cfg.Services.StripeSecretKey,
		cfg.Services.StripeWebhookSecret,
		deps.JobClient,
		logger,
	)
	deps.BillingHandler = billingHandler.New(billingProc, logger)

	return deps, nil
}

// Cleanup closes all resources
func (d *Dependencies) Cleanup() {
	ctx := context.Background()

	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}

	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close Kafka producer", err)
		}
	}

	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}

	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
