package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler exposes maintenance operations over the ledger store.
type adminHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func registerAdminRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := &adminHandler{ledger: ledger}

	admin := rg.Group("/admin")
	{
		admin.POST("/reset", h.resetData)
		admin.POST("/recompute-balances", h.recomputeBalances)
	}
}

// resetData discards the persisted snapshot and reloads the seed dataset.
func (h *adminHandler) resetData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledger.ResetData(c.Request.Context()); err != nil {
		logger.Error("Failed to reset data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data reset to seed state"})
}

// recomputeBalances rebuilds account balances from the current transactions.
func (h *adminHandler) recomputeBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.ledger.RecomputeBalances(c.Request.Context()); err != nil {
		logger.Error("Failed to recompute balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute balances"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account balances recomputed"})
}
