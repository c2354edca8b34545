package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finwise/finance_tracker_app/internal/apperrors"
	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler serves derived statistics.
type statsHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func registerStatsRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := &statsHandler{ledger: ledger}
	rg.GET("/stats/monthly", h.monthlyStats)
}

// monthlyStats aggregates one YYYY-MM month; defaults to the current month
// when no month parameter is given.
func (h *statsHandler) monthlyStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.ledger.MonthlyStats(c.Request.Context(), params.Month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute monthly stats", slog.String("error", err.Error()), slog.String("month", params.Month))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly stats"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyStatsResponse(stats))
}
