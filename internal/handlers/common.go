package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/db"
	"github.com/swiftbill/swiftbill-api/internal/logger"
)

// CommonServices holds shared dependencies used across handlers.
type CommonServices struct {
	db     db.Querier
	dbPool *pgxpool.Pool
	logger *zap.Logger
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// CommonServicesConfig contains the dependencies for CommonServices.
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool
	Logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		db:     config.DB,
		dbPool: config.DBPool,
		logger: config.Logger,
	}
}
