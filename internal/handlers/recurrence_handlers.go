package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/swiftbill/swiftbill-api/internal/services"
)

// RecurrenceHandler exposes the scheduled generation run over HTTP for
// operator-triggered and cron-triggered runs.
type RecurrenceHandler struct {
	common     *CommonServices
	recurrence *services.RecurrenceService
	logger     *zap.Logger
}

// NewRecurrenceHandler creates a recurrence handler.
func NewRecurrenceHandler(common *CommonServices, recurrence *services.RecurrenceService, logger *zap.Logger) *RecurrenceHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &RecurrenceHandler{
		common:     common,
		recurrence: recurrence,
		logger:     logger,
	}
}

// RunGenerations godoc
// @Summary Run due recurring invoice generations
// @Description Generates invoices for every recurring template whose next issue date has arrived
// @Tags recurrence
// @Produce json
// @Success 200 {object} services.GenerationResults
// @Failure 500 {object} ErrorResponse
// @Router /recurrence/run [post]
func (h *RecurrenceHandler) RunGenerations(c *gin.Context) {
	results, err := h.recurrence.RunDueGenerations(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.logger.Error("generation run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "generation run failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}
