package server

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/client/lease"
	"github.com/swiftbill/swiftbill-api/internal/client/razorpay"
	"github.com/swiftbill/swiftbill-api/internal/db"
	"github.com/swiftbill/swiftbill-api/internal/handlers"
	"github.com/swiftbill/swiftbill-api/internal/logger"
	"github.com/swiftbill/swiftbill-api/internal/services"
)

// Handler definitions
var (
	healthHandler     *handlers.HealthHandler
	invoiceHandler    *handlers.InvoiceHandler
	webhookHandler    *handlers.WebhookHandler
	recurrenceHandler *handlers.RecurrenceHandler

	// Database
	dbQueries *db.Queries
	dbPool    *pgxpool.Pool
)

// InitializeHandlers wires the database, gateway client and services into the
// HTTP handlers. Fatal on missing required configuration.
func InitializeHandlers() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	dbPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	dbQueries = db.New(dbPool)

	if os.Getenv("GATEWAY_KEY_ID") == "" {
		logger.Fatal("GATEWAY_KEY_ID environment variable is required")
	}
	if os.Getenv("GATEWAY_WEBHOOK_SECRET") == "" {
		logger.Fatal("GATEWAY_WEBHOOK_SECRET environment variable is required")
	}
	gatewayClient := razorpay.NewClient(razorpay.Config{
		BaseURL:       os.Getenv("GATEWAY_BASE_URL"),
		KeyID:         os.Getenv("GATEWAY_KEY_ID"),
		KeySecret:     os.Getenv("GATEWAY_KEY_SECRET"),
		WebhookSecret: os.Getenv("GATEWAY_WEBHOOK_SECRET"),
	}, logger.Log)

	commonServices := handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:     dbQueries,
		DBPool: dbPool,
		Logger: logger.Log,
	})

	invoiceService := services.NewInvoiceService(dbQueries, gatewayClient, logger.Log)
	webhookProcessor := services.NewWebhookProcessor(dbQueries, gatewayClient, logger.Log)

	var emailSender services.EmailSender
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		emailSender = services.NewEmailService(
			apiKey,
			os.Getenv("EMAIL_FROM_ADDRESS"),
			os.Getenv("EMAIL_FROM_NAME"),
			logger.Log,
		)
	}
	generator := services.NewInvoiceGenerator(dbQueries, invoiceService, emailSender, logger.Log)

	leaseStore := newLeaseStore()
	recurrenceService := services.NewRecurrenceService(dbQueries, generator, leaseStore, logger.Log)

	healthHandler = handlers.NewHealthHandler(commonServices)
	invoiceHandler = handlers.NewInvoiceHandler(commonServices, invoiceService, logger.Log)
	webhookHandler = handlers.NewWebhookHandler(commonServices, webhookProcessor, logger.Log)
	recurrenceHandler = handlers.NewRecurrenceHandler(commonServices, recurrenceService, logger.Log)
}

func newLeaseStore() *lease.Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Fatal("REDIS_ADDR environment variable is required")
	}

	redisDB := 0
	if dbEnv := os.Getenv("REDIS_DB"); dbEnv != "" {
		parsed, err := strconv.Atoi(dbEnv)
		if err != nil {
			logger.Fatal("REDIS_DB must be an integer", zap.Error(err))
		}
		redisDB = parsed
	}

	client, err := lease.NewRedisConnection(lease.ConnectionInfo{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})
	if err != nil {
		logger.Fatal("Unable to connect to redis", zap.Error(err))
	}
	return lease.NewStore(client, os.Getenv("REDIS_PREFIX"), 0, logger.Log)
}

// InitializeRoutes registers middleware and all API routes.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/health", healthHandler.Health)

	// Gateway deliveries carry their own HMAC auth, outside the API group.
	router.POST("/webhooks/gateway", webhookHandler.HandleGatewayWebhook)

	v1 := router.Group("/api/v1")
	{
		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.POST("/:id/payment-link", invoiceHandler.IssuePaymentLink)
		}

		recurrence := v1.Group("/recurrence")
		{
			recurrence.POST("/run", recurrenceHandler.RunGenerations)
		}
	}
}

// configureCORS returns a configured CORS middleware.
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", handlers.SignatureHeader}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
