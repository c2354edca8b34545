package handlers

import (
	"net/http"

	portssvc "github.com/finwise/finance_tracker_app/internal/core/ports/services"
	"github.com/finwise/finance_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// portfolioHandler serves the read-only stock portfolio.
type portfolioHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func registerPortfolioRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := &portfolioHandler{ledger: ledger}

	portfolio := rg.Group("/portfolio")
	{
		portfolio.GET("", h.listHoldings)
		portfolio.GET("/value", h.portfolioValue)
		portfolio.GET("/gain-loss", h.portfolioGainLoss)
	}
}

func (h *portfolioHandler) listHoldings(c *gin.Context) {
	holdings := h.ledger.StockPortfolio(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListPortfolioResponse(holdings))
}

func (h *portfolioHandler) portfolioValue(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PortfolioValueResponse{
		Value: h.ledger.PortfolioValue(c.Request.Context()),
	})
}

func (h *portfolioHandler) portfolioGainLoss(c *gin.Context) {
	gl := h.ledger.PortfolioGainLoss(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToPortfolioGainLossResponse(gl))
}
