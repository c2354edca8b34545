package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/finwise/finance_tracker_app/internal/apperrors"
	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/finwise/finance_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to bank accounts.
type accountHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newAccountHandler(ledger portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledger: ledger}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledger)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/total-balance", h.totalBankBalance)
		accounts.GET("/:id", h.getAccount)
	}
}

func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts := h.ledger.AllAccounts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.ToListAccountResponse(accounts),
	})
}

func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	account, err := h.ledger.AccountByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()), slog.Int("account_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *accountHandler) totalBankBalance(c *gin.Context) {
	total := h.ledger.TotalBankBalance(c.Request.Context())
	c.JSON(http.StatusOK, dto.TotalBalanceResponse{TotalBalance: total})
}
