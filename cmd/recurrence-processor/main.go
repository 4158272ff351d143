package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/client/lease"
	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/db"
	"github.com/swiftbill/swiftbill-api/internal/helpers"
	"github.com/swiftbill/swiftbill-api/internal/logger"
	"github.com/swiftbill/swiftbill-api/internal/services"
)

// Application holds the dependencies for the Lambda handler.
type Application struct {
	recurrence *services.RecurrenceService
}

// HandleRequest runs one scheduled generation pass over all due templates.
func (app *Application) HandleRequest(ctx context.Context) error {
	logger.Info("Starting recurring invoice generation run")

	results, err := app.recurrence.RunDueGenerations(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("Generation run failed", zap.Error(err))
		return fmt.Errorf("HandleRequest: error from RunDueGenerations: %w", err)
	}

	logger.Info("Generation run results",
		zap.Int("due", results.Due),
		zap.Int("generated", results.Generated),
		zap.Int("skipped", results.Skipped),
		zap.Int("failed", results.Failed),
	)
	return nil
}

func main() {
	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Cold start: initializing recurrence processor", zap.String("stage", stage))
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	// The pool is not closed in main: it persists across warm Lambda
	// invocations and the runtime tears it down with the container.
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	dbQueries := db.New(connPool)

	if os.Getenv("GATEWAY_KEY_ID") == "" {
		logger.Fatal("GATEWAY_KEY_ID environment variable is required")
	}
	gatewayClient := razorpay.NewClient(razorpay.Config{
		BaseURL:       os.Getenv("GATEWAY_BASE_URL"),
		KeyID:         os.Getenv("GATEWAY_KEY_ID"),
		KeySecret:     os.Getenv("GATEWAY_KEY_SECRET"),
		WebhookSecret: os.Getenv("GATEWAY_WEBHOOK_SECRET"),
	}, logger.Log)

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		logger.Fatal("REDIS_ADDR environment variable is required")
	}
	redisDB := 0
	if dbEnv := os.Getenv("REDIS_DB"); dbEnv != "" {
		redisDB, err = strconv.Atoi(dbEnv)
		if err != nil {
			logger.Fatal("REDIS_DB must be an integer", zap.Error(err))
		}
	}
	redisClient, err := lease.NewRedisConnection(lease.ConnectionInfo{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})
	if err != nil {
		logger.Fatal("Unable to connect to redis", zap.Error(err))
	}
	leaseStore := lease.NewStore(redisClient, os.Getenv("REDIS_PREFIX"), 0, logger.Log)

	var emailSender services.EmailSender
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		emailSender = services.NewEmailService(
			apiKey,
			os.Getenv("EMAIL_FROM_ADDRESS"),
			os.Getenv("EMAIL_FROM_NAME"),
			logger.Log,
		)
	} else {
		logger.Warn("RESEND_API_KEY not set, auto-send emails disabled")
	}

	invoiceService := services.NewInvoiceService(dbQueries, gatewayClient, logger.Log)
	generator := services.NewInvoiceGenerator(dbQueries, invoiceService, emailSender, logger.Log)
	app := &Application{
		recurrence: services.NewRecurrenceService(dbQueries, generator, leaseStore, logger.Log),
	}

	if stage == helpers.StageLocal {
		// Run one pass directly instead of waiting for Lambda invocations.
		if err := app.HandleRequest(ctx); err != nil {
			logger.Fatal("Local generation run failed", zap.Error(err))
		}
		return
	}

	lambda.Start(app.HandleRequest)
}
